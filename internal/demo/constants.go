package demo

import "io"

const appName = "golearn"

const (
	maxUsers         = 100
	pi       float64 = 3.14159
	greeting         = "Welcome"
)

type weekday int

const (
	sunday weekday = iota
	monday
	tuesday
	wednesday
)

type byteSize uint64

const (
	_           = iota
	kb byteSize = 1 << (10 * iota)
	mb
	gb
)

func init() {
	Register("constants.package", constantsPackage)
	Register("constants.typed", constantsTyped)
	Register("constants.grouped", constantsGrouped)
	Register("constants.iota", constantsIota)
	Register("constants.iota-expr", constantsIotaExpr)
	Register("constants.untyped", constantsUntyped)
}

func constantsPackage(w io.Writer) {
	result(w, "appName: %s", appName)
}

func constantsTyped(w io.Writer) {
	const rate float64 = 0.075
	const limit = 10
	result(w, "rate: %v (%T)", rate, rate)
	result(w, "limit: %v (default type %T)", limit, limit)
}

func constantsGrouped(w io.Writer) {
	result(w, "maxUsers: %d", maxUsers)
	result(w, "pi: %.5f", pi)
	result(w, "greeting: %s", greeting)
}

func constantsIota(w io.Writer) {
	result(w, "sunday=%d monday=%d tuesday=%d wednesday=%d", sunday, monday, tuesday, wednesday)
}

func constantsIotaExpr(w io.Writer) {
	result(w, "KB = %d", kb)
	result(w, "MB = %d", mb)
	result(w, "GB = %d", gb)
}

func constantsUntyped(w io.Writer) {
	const big = 1 << 40
	var asFloat float64 = big
	var asInt64 int64 = big
	result(w, "big as float64: %v", asFloat)
	result(w, "big as int64:   %v", asInt64)
}
