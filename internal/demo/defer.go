package demo

import (
	"io"
	"sync"
)

func init() {
	Register("defer.basic", deferBasic)
	Register("defer.arguments", deferArguments)
	Register("defer.lifo", deferLIFO)
	Register("defer.closure", deferClosure)
	Register("defer.loop", deferLoop)
	Register("defer.named-result", deferNamedResult)
	Register("defer.recover", deferRecover)
	Register("defer.mutex", deferMutex)
}

func deferBasic(w io.Writer) {
	say(w, "1. Start")
	defer say(w, "3. Deferred (runs last)")
	say(w, "2. Middle")
}

func deferArguments(w io.Writer) {
	i := 1
	defer say(w, "Result: %d", i)
	i = 2
	say(w, "i is now: %d", i)
}

func deferLIFO(w io.Writer) {
	defer say(w, "First")
	defer say(w, "Second")
	defer say(w, "Third")
	say(w, "Main")
}

func deferClosure(w io.Writer) {
	x := 10
	defer func() {
		say(w, "x is: %d", x)
	}()
	x = 20
}

func deferLoop(w io.Writer) {
	for i := 1; i <= 3; i++ {
		defer say(w, "%d", i)
	}
}

func increment() (n int) {
	defer func() { n++ }()
	return 5
}

func deferNamedResult(w io.Writer) {
	result(w, "increment() = %d (defer modified it!)", increment())
}

func safeDivide(a, b int) (q int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError{value: r}
		}
	}()
	return a / b, nil
}

type recoveredError struct{ value any }

func (e recoveredError) Error() string {
	if err, ok := e.value.(error); ok {
		return "recovered: " + err.Error()
	}
	return "recovered from panic"
}

func deferRecover(w io.Writer) {
	q, err := safeDivide(10, 2)
	result(w, "safeDivide(10, 2) = %d, err = %v", q, err)
	_, err = safeDivide(1, 0)
	result(w, "safeDivide(1, 0) err = %v", err)
}

type tally struct {
	mu sync.Mutex
	n  int
}

func (t *tally) Inc() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.n++
}

func deferMutex(w io.Writer) {
	var t tally
	for i := 0; i < 3; i++ {
		t.Inc()
	}
	result(w, "tally after 3 Inc() calls: %d", t.n)
}
