package demo

import (
	"io"
	"math"
)

func init() {
	Register("datatypes.bool", datatypesBool)
	Register("datatypes.integers", datatypesIntegers)
	Register("datatypes.unsigned", datatypesUnsigned)
	Register("datatypes.floats", datatypesFloats)
	Register("datatypes.strings", datatypesStrings)
	Register("datatypes.complex", datatypesComplex)
	Register("datatypes.conversion", datatypesConversion)
}

func datatypesBool(w io.Writer) {
	isReady := true
	var isDone bool
	result(w, "isReady: %t, isDone: %t", isReady, isDone)
}

func datatypesIntegers(w io.Writer) {
	result(w, "int8:  %d to %d", math.MinInt8, math.MaxInt8)
	result(w, "int16: %d to %d", math.MinInt16, math.MaxInt16)
	result(w, "int32: %d to %d", math.MinInt32, math.MaxInt32)
	result(w, "int64: %d to %d", int64(math.MinInt64), int64(math.MaxInt64))
}

func datatypesUnsigned(w io.Writer) {
	result(w, "uint8:  0 to %d", math.MaxUint8)
	result(w, "uint16: 0 to %d", math.MaxUint16)
	result(w, "uint32: 0 to %d", uint32(math.MaxUint32))
	var b byte = 'A'
	result(w, "byte 'A' = %d", b)
}

func datatypesFloats(w io.Writer) {
	var f32 float32 = 3.1415927
	f64 := 3.141592653589793
	result(w, "float32: %v", f32)
	result(w, "float64: %v", f64)
	result(w, "0.1 + 0.2 = %v", 0.1+0.2)
}

func datatypesStrings(w io.Writer) {
	s := "Go is fun"
	raw := `C:\path\no\escapes`
	result(w, "s: %q, len: %d", s, len(s))
	result(w, "raw: %s", raw)
}

func datatypesComplex(w io.Writer) {
	c := complex(3, 4)
	result(w, "c = %v", c)
	result(w, "real(c) = %v, imag(c) = %v", real(c), imag(c))
}

func datatypesConversion(w io.Writer) {
	i := 42
	f := float64(i)
	u := uint8(300 % 256)
	price := 9.99
	back := int(price)
	result(w, "float64(42) = %v", f)
	result(w, "uint8(300 %% 256) = %d", u)
	result(w, "int(%v) = %d (truncated)", price, back)
}
