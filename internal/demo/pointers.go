package demo

import "io"

func init() {
	Register("pointers.address", pointersAddress)
	Register("pointers.modify", pointersModify)
	Register("pointers.new", pointersNew)
	Register("pointers.nil", pointersNil)
	Register("pointers.value-vs-pointer", pointersValueVsPointer)
}

func pointersAddress(w io.Writer) {
	x := 42
	p := &x
	result(w, "x = %d", x)
	result(w, "p != nil: %t", p != nil)
	result(w, "*p = %d", *p)
}

func pointersModify(w io.Writer) {
	x := 10
	p := &x
	*p = 20
	result(w, "after *p = 20, x = %d", x)
}

func pointersNew(w io.Writer) {
	p := new(int)
	result(w, "*new(int) = %d", *p)
	*p = 7
	result(w, "after *p = 7: %d", *p)
}

func pointersNil(w io.Writer) {
	var p *int
	result(w, "var p *int → p == nil: %t", p == nil)
	if p != nil {
		result(w, "never printed: %d", *p)
	} else {
		result(w, "check for nil before dereferencing")
	}
}

func doubleValue(n int) {
	n *= 2
}

func doublePointer(n *int) {
	*n *= 2
}

func pointersValueVsPointer(w io.Writer) {
	a := 5
	doubleValue(a)
	result(w, "doubleValue(a): a = %d (copy changed)", a)
	doublePointer(&a)
	result(w, "doublePointer(&a): a = %d (original changed)", a)
}
