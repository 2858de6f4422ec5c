package demo

import "io"

func init() {
	Register("variables.explicit", variablesExplicit)
	Register("variables.inferred", variablesInferred)
	Register("variables.short", variablesShort)
	Register("variables.zero", variablesZero)
	Register("variables.assign-later", variablesAssignLater)
	Register("variables.multiple", variablesMultiple)
	Register("variables.grouped", variablesGrouped)
}

func variablesExplicit(w io.Writer) {
	var greeting string = "Hello, Go!"
	result(w, "Value: %s", greeting)
	result(w, "Type: %T", greeting)
}

func variablesInferred(w io.Writer) {
	var inferred = "Type inferred automatically"
	result(w, "Value: %s", inferred)
	result(w, "Type: %T (inferred)", inferred)
}

func variablesShort(w io.Writer) {
	short := "Quick and concise!"
	result(w, "Value: %s", short)
	result(w, "Type: %T (inferred)", short)
}

func variablesZero(w io.Writer) {
	var (
		text    string
		number  int
		boolean bool
		ratio   float64
	)
	result(w, "string:  %q (empty string)", text)
	result(w, "int:     %d", number)
	result(w, "bool:    %t", boolean)
	result(w, "float64: %v", ratio)
}

func variablesAssignLater(w io.Writer) {
	var later string
	later = "Assigned after declaration"
	result(w, "Value: %s", later)
}

func variablesMultiple(w io.Writer) {
	var first, second string = "First", "Second"
	var count, label = 42, "Mixed types!"
	total, kind := 100, "Short form"
	result(w, "first: %s, second: %s", first, second)
	result(w, "count: %v (%T), label: %v (%T)", count, count, label, label)
	result(w, "total: %v (%T), kind: %v (%T)", total, total, kind, kind)
}

func variablesGrouped(w io.Writer) {
	var (
		port        = 999
		name        = "Grouped declaration"
		mode string = "With explicit type"
	)
	result(w, "port: %v (%T)", port, port)
	result(w, "name: %v (%T)", name, name)
	result(w, "mode: %v (%T)", mode, mode)
}
