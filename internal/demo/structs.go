package demo

import (
	"encoding/json"
	"io"
	"math"
	"unsafe"
)

type person struct {
	Name string
	Age  int
}

type address struct {
	City    string
	Country string
}

type employee struct {
	person
	Address address
	Salary  float64
}

type shape struct {
	Width, Height float64
}

func (s shape) Area() float64 {
	return s.Width * s.Height
}

func (s *shape) Scale(f float64) {
	s.Width *= f
	s.Height *= f
}

type product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price,omitempty"`
	note  string
}

func init() {
	Register("structs.create", structsCreate)
	Register("structs.anonymous", structsAnonymous)
	Register("structs.embedded", structsEmbedded)
	Register("structs.pointer", structsPointer)
	Register("structs.methods", structsMethods)
	Register("structs.compare", structsCompare)
	Register("structs.tags", structsTags)
	Register("structs.empty", structsEmpty)
}

func structsCreate(w io.Writer) {
	p1 := person{Name: "Alice", Age: 30}
	p2 := person{"Bob", 25}
	var p3 person
	result(w, "p1 = %+v", p1)
	result(w, "p2 = %+v", p2)
	result(w, "zero person = %+v", p3)
	p1.Age++
	result(w, "after p1.Age++: %d", p1.Age)
}

func structsAnonymous(w io.Writer) {
	point := struct {
		X, Y int
	}{X: 3, Y: 4}
	result(w, "point = %+v, distance = %v", point, math.Hypot(float64(point.X), float64(point.Y)))
}

func structsEmbedded(w io.Writer) {
	e := employee{
		person:  person{Name: "Carol", Age: 41},
		Address: address{City: "Oslo", Country: "Norway"},
		Salary:  72000,
	}
	result(w, "e.Name = %s (promoted from person)", e.Name)
	result(w, "e.Address.City = %s", e.Address.City)
}

func birthdayByValue(p person) {
	p.Age++
}

func birthdayByPointer(p *person) {
	p.Age++
}

func structsPointer(w io.Writer) {
	p := person{Name: "Dan", Age: 20}
	birthdayByValue(p)
	result(w, "after birthdayByValue: Age = %d", p.Age)
	birthdayByPointer(&p)
	result(w, "after birthdayByPointer: Age = %d", p.Age)
	ptr := &p
	result(w, "ptr.Name = %s (automatic dereference)", ptr.Name)
}

func structsMethods(w io.Writer) {
	s := shape{Width: 3, Height: 4}
	result(w, "Area() = %v", s.Area())
	s.Scale(2)
	result(w, "after Scale(2): %+v, Area() = %v", s, s.Area())
}

func structsCompare(w io.Writer) {
	a := person{"Eve", 33}
	b := person{"Eve", 33}
	c := person{"Eve", 34}
	result(w, "a == b: %t, a == c: %t", a == b, a == c)
}

func structsTags(w io.Writer) {
	p := product{ID: 7, Name: "Gopher plush", note: "internal"}
	b, err := json.Marshal(p)
	if err != nil {
		result(w, "marshal error: %v", err)
		return
	}
	result(w, "%s", b)
	say(w, "💡 Price is omitted (omitempty) and note is unexported.")
}

func structsEmpty(w io.Writer) {
	var e struct{}
	result(w, "unsafe.Sizeof(struct{}{}) = %d", unsafe.Sizeof(e))
	set := map[string]struct{}{"go": {}, "rust": {}}
	_, ok := set["go"]
	result(w, "set membership for \"go\": %t", ok)
}
