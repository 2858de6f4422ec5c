package demo

import "io"

func init() {
	Register("operators.arithmetic", operatorsArithmetic)
	Register("operators.assignment", operatorsAssignment)
	Register("operators.increment", operatorsIncrement)
	Register("operators.comparison", operatorsComparison)
	Register("operators.logical", operatorsLogical)
	Register("operators.bitwise", operatorsBitwise)
	Register("operators.shift", operatorsShift)
	Register("operators.precedence", operatorsPrecedence)
}

func operatorsArithmetic(w io.Writer) {
	a, b := 17, 5
	result(w, "%d + %d = %d", a, b, a+b)
	result(w, "%d - %d = %d", a, b, a-b)
	result(w, "%d * %d = %d", a, b, a*b)
	result(w, "%d / %d = %d (integer division)", a, b, a/b)
	result(w, "%d %% %d = %d", a, b, a%b)
	result(w, "17.0 / 5.0 = %v", 17.0/5.0)
}

func operatorsAssignment(w io.Writer) {
	x := 10
	x += 5
	result(w, "x += 5  → %d", x)
	x -= 3
	result(w, "x -= 3  → %d", x)
	x *= 2
	result(w, "x *= 2  → %d", x)
	x /= 4
	result(w, "x /= 4  → %d", x)
	x %= 4
	result(w, "x %%= 4  → %d", x)
}

func operatorsIncrement(w io.Writer) {
	counter := 5
	counter++
	result(w, "counter++ → %d", counter)
	counter--
	counter--
	result(w, "counter-- twice → %d", counter)
}

func operatorsComparison(w io.Writer) {
	a, b := 10, 20
	result(w, "%d == %d: %t", a, b, a == b)
	result(w, "%d != %d: %t", a, b, a != b)
	result(w, "%d < %d:  %t", a, b, a < b)
	result(w, "%d >= %d: %t", a, b, a >= b)
	result(w, "\"apple\" < \"banana\": %t", "apple" < "banana")
}

func operatorsLogical(w io.Writer) {
	t, f := true, false
	result(w, "true && false = %t", t && f)
	result(w, "true || false = %t", t || f)
	result(w, "!true = %t", !t)
}

func operatorsBitwise(w io.Writer) {
	var a, b uint8 = 12, 10
	result(w, "a = %04b, b = %04b", a, b)
	result(w, "a & b  = %04b (%d)", a&b, a&b)
	result(w, "a | b  = %04b (%d)", a|b, a|b)
	result(w, "a ^ b  = %04b (%d)", a^b, a^b)
	result(w, "a &^ b = %04b (%d)", a&^b, a&^b)
}

func operatorsShift(w io.Writer) {
	n := 1
	result(w, "1 << 3 = %d", n<<3)
	result(w, "64 >> 2 = %d", 64>>2)
}

func operatorsPrecedence(w io.Writer) {
	result(w, "2 + 3 * 4 = %d", 2+3*4)
	result(w, "(2 + 3) * 4 = %d", (2+3)*4)
	result(w, "10 - 4 / 2 = %d", 10-4/2)
}
