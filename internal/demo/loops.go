package demo

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

func init() {
	Register("loops.classic", loopsClassic)
	Register("loops.while", loopsWhile)
	Register("loops.infinite", loopsInfinite)
	Register("loops.continue", loopsContinue)
	Register("loops.nested", loopsNested)
	Register("loops.range-slice", loopsRangeSlice)
	Register("loops.range-string", loopsRangeString)
	Register("loops.range-map", loopsRangeMap)
	Register("loops.labeled", loopsLabeled)
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, " ")
}

func loopsClassic(w io.Writer) {
	var up, down, evens []int
	for i := 1; i <= 5; i++ {
		up = append(up, i)
	}
	for i := 5; i >= 1; i-- {
		down = append(down, i)
	}
	for i := 0; i <= 10; i += 2 {
		evens = append(evens, i)
	}
	result(w, "counting up:   %s", joinInts(up))
	result(w, "counting down: %s", joinInts(down))
	result(w, "step of 2:     %s", joinInts(evens))
}

func loopsWhile(w io.Writer) {
	n := 1
	for n < 100 {
		n *= 2
	}
	result(w, "first power of 2 >= 100: %d", n)
}

func loopsInfinite(w io.Writer) {
	attempts := 0
	for {
		attempts++
		if attempts == 3 {
			break
		}
	}
	result(w, "stopped after %d attempts", attempts)
}

func loopsContinue(w io.Writer) {
	var odds []int
	for i := 1; i <= 10; i++ {
		if i%2 == 0 {
			continue
		}
		odds = append(odds, i)
	}
	result(w, "odd numbers: %s", joinInts(odds))
}

func loopsNested(w io.Writer) {
	for i := 1; i <= 3; i++ {
		row := make([]int, 0, 3)
		for j := 1; j <= 3; j++ {
			row = append(row, i*j)
		}
		result(w, "%d x [1 2 3] = %s", i, joinInts(row))
	}
}

func loopsRangeSlice(w io.Writer) {
	fruits := []string{"apple", "banana", "cherry"}
	for i, f := range fruits {
		result(w, "index %d: %s", i, f)
	}
	sum := 0
	for _, n := range []int{10, 20, 30} {
		sum += n
	}
	result(w, "sum of values: %d", sum)
}

func loopsRangeString(w io.Writer) {
	for i, r := range "héllo" {
		result(w, "byte %d: %q (U+%04X)", i, r, r)
	}
}

func loopsRangeMap(w io.Writer) {
	ages := map[string]int{"alice": 30, "bob": 25, "carol": 35}
	names := make([]string, 0, len(ages))
	for name := range ages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		result(w, "%s is %d", name, ages[name])
	}
}

func loopsLabeled(w io.Writer) {
outer:
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			if i*j == 4 {
				result(w, "breaking outer at i=%d j=%d", i, j)
				break outer
			}
		}
	}
}
