package demo

import "io"

func init() {
	Register("arrays.declare", arraysDeclare)
	Register("arrays.access", arraysAccess)
	Register("arrays.zero", arraysZero)
	Register("arrays.index-init", arraysIndexInit)
	Register("arrays.iterate", arraysIterate)
	Register("arrays.matrix", arraysMatrix)
	Register("arrays.value-semantics", arraysValueSemantics)
}

func arraysDeclare(w io.Writer) {
	var explicit [3]int = [3]int{1, 2, 3}
	inferred := [...]string{"red", "green", "blue", "yellow"}
	result(w, "explicit: %v (len %d)", explicit, len(explicit))
	result(w, "inferred: %v (len %d)", inferred, len(inferred))
}

func arraysAccess(w io.Writer) {
	primes := [5]int{2, 3, 5, 7, 11}
	result(w, "primes[0] = %d, primes[4] = %d", primes[0], primes[4])
	primes[2] = 99
	result(w, "after primes[2] = 99: %v", primes)
}

func arraysZero(w io.Writer) {
	var nums [4]int
	var flags [2]bool
	partial := [5]int{1, 2}
	result(w, "[4]int: %v", nums)
	result(w, "[2]bool: %v", flags)
	result(w, "partial [5]int{1, 2}: %v", partial)
}

func arraysIndexInit(w io.Writer) {
	sparse := [6]string{1: "one", 4: "four"}
	result(w, "%q", sparse)
}

func arraysIterate(w io.Writer) {
	scores := [3]int{90, 85, 77}
	total := 0
	for i, s := range scores {
		result(w, "scores[%d] = %d", i, s)
		total += s
	}
	result(w, "total = %d", total)
}

func arraysMatrix(w io.Writer) {
	var grid [2][3]int
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			grid[r][c] = r*3 + c
		}
	}
	for _, row := range grid {
		result(w, "%v", row)
	}
}

func arraysValueSemantics(w io.Writer) {
	a := [3]int{1, 2, 3}
	b := a
	b[0] = 100
	result(w, "a = %v, b = %v (arrays are copied)", a, b)
	result(w, "a == [3]int{1, 2, 3}: %t", a == [3]int{1, 2, 3})
}
