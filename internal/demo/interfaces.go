package demo

import (
	"errors"
	"fmt"
	"io"
	"math"
)

type area interface {
	Area() float64
}

type circle struct{ R float64 }

func (c circle) Area() float64 { return math.Pi * c.R * c.R }

type square struct{ Side float64 }

func (s square) Area() float64 { return s.Side * s.Side }

func (s square) String() string { return fmt.Sprintf("square(%g)", s.Side) }

type notFoundError struct{ key string }

func (e *notFoundError) Error() string { return "not found: " + e.key }

func lookup(key string) error {
	return fmt.Errorf("lookup failed: %w", &notFoundError{key: key})
}

func init() {
	Register("interfaces.implicit", interfacesImplicit)
	Register("interfaces.polymorphism", interfacesPolymorphism)
	Register("interfaces.empty", interfacesEmpty)
	Register("interfaces.assertion", interfacesAssertion)
	Register("interfaces.stringer", interfacesStringer)
	Register("interfaces.errors", interfacesErrors)
}

func interfacesImplicit(w io.Writer) {
	var a area = square{Side: 2}
	result(w, "square satisfies area implicitly: Area() = %v", a.Area())
}

func interfacesPolymorphism(w io.Writer) {
	shapes := []area{circle{R: 1}, square{Side: 3}}
	total := 0.0
	for _, s := range shapes {
		result(w, "%T area = %.2f", s, s.Area())
		total += s.Area()
	}
	result(w, "total = %.2f", total)
}

func interfacesEmpty(w io.Writer) {
	values := []any{42, "text", 3.5, []int{1, 2}}
	for _, v := range values {
		result(w, "%v (%T)", v, v)
	}
}

func interfacesAssertion(w io.Writer) {
	var a area = circle{R: 2}
	if c, ok := a.(circle); ok {
		result(w, "a.(circle) ok, radius = %v", c.R)
	}
	_, ok := a.(square)
	result(w, "a.(square) ok = %t", ok)
}

func interfacesStringer(w io.Writer) {
	result(w, "%v", square{Side: 1.5})
	var s fmt.Stringer = square{Side: 4}
	result(w, "via fmt.Stringer: %s", s.String())
}

func interfacesErrors(w io.Writer) {
	err := lookup("config")
	result(w, "err = %v", err)
	var nf *notFoundError
	if errors.As(err, &nf) {
		result(w, "errors.As matched *notFoundError, key = %q", nf.key)
	}
}
