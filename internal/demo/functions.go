package demo

import (
	"errors"
	"io"
)

func init() {
	Register("functions.params", functionsParams)
	Register("functions.multi-return", functionsMultiReturn)
	Register("functions.named-return", functionsNamedReturn)
	Register("functions.variadic", functionsVariadic)
	Register("functions.values", functionsValues)
	Register("functions.closure", functionsClosure)
	Register("functions.recursion", functionsRecursion)
}

func add(a, b int) int {
	return a + b
}

func greet(name string, times int) string {
	out := ""
	for i := 0; i < times; i++ {
		out += "Hi " + name + "! "
	}
	return out
}

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}

func rectangle(width, height float64) (area, perimeter float64) {
	area = width * height
	perimeter = 2 * (width + height)
	return
}

func sum(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

func counter() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}

func factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * factorial(n-1)
}

func functionsParams(w io.Writer) {
	result(w, "add(3, 4) = %d", add(3, 4))
	result(w, "greet(\"Gopher\", 2) = %q", greet("Gopher", 2))
}

func functionsMultiReturn(w io.Writer) {
	q, err := divide(10, 4)
	result(w, "divide(10, 4) = %v, err = %v", q, err)
	_, err = divide(1, 0)
	result(w, "divide(1, 0) err = %v", err)
}

func functionsNamedReturn(w io.Writer) {
	area, perimeter := rectangle(3, 4)
	result(w, "rectangle(3, 4): area=%v perimeter=%v", area, perimeter)
}

func functionsVariadic(w io.Writer) {
	result(w, "sum() = %d", sum())
	result(w, "sum(1, 2, 3) = %d", sum(1, 2, 3))
	nums := []int{10, 20, 30}
	result(w, "sum(nums...) = %d", sum(nums...))
}

func functionsValues(w io.Writer) {
	op := add
	result(w, "op := add; op(2, 5) = %d", op(2, 5))
	square := func(n int) int { return n * n }
	result(w, "square(6) = %d", square(6))
	result(w, "immediate: %d", func(a, b int) int { return a * b }(3, 7))
}

func functionsClosure(w io.Writer) {
	next := counter()
	result(w, "next() = %d", next())
	result(w, "next() = %d", next())
	result(w, "next() = %d", next())
	fresh := counter()
	result(w, "fresh() = %d (independent state)", fresh())
}

func functionsRecursion(w io.Writer) {
	for _, n := range []int{0, 1, 5, 10} {
		result(w, "factorial(%d) = %d", n, factorial(n))
	}
}
