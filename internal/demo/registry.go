// Package demo holds the runnable Go snippets shown by the lessons. Each demo
// is registered under a dotted name ("<topic>.<snippet>") and prints the
// results of executing the code its lesson section lists.
package demo

import (
	"fmt"
	"io"
	"sort"
)

// Func executes one snippet, writing its results to w.
type Func func(w io.Writer)

var registry = map[string]Func{}

// Register adds a demo under name, replacing any previous one.
func Register(name string, f Func) {
	registry[name] = f
}

// Has reports whether name is registered.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns all registered demo names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Run executes a registered demo by name.
func Run(name string, w io.Writer) error {
	f, ok := registry[name]
	if !ok {
		return ErrUnknown{name: name}
	}
	f(w)
	return nil
}

// ErrUnknown is returned when a demo is not found.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string { return "unknown demo: " + e.name }

// Runner adapts the package registry for callers that take an interface.
type Runner struct{}

func (Runner) Has(name string) bool { return Has(name) }
func (Runner) Run(name string, w io.Writer) error { return Run(name, w) }

func result(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "   → "+format+"\n", args...)
}

func say(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "   "+format+"\n", args...)
}
