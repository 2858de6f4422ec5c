package demo

import "io"

func init() {
	Register("slices.literal", slicesLiteral)
	Register("slices.from-array", slicesFromArray)
	Register("slices.make", slicesMake)
	Register("slices.append", slicesAppend)
	Register("slices.growth", slicesGrowth)
	Register("slices.copy", slicesCopy)
	Register("slices.shared", slicesShared)
	Register("slices.nil", slicesNil)
}

func slicesLiteral(w io.Writer) {
	s := []int{10, 20, 30}
	result(w, "s = %v, len = %d, cap = %d", s, len(s), cap(s))
}

func slicesFromArray(w io.Writer) {
	arr := [6]int{0, 1, 2, 3, 4, 5}
	result(w, "arr[1:4] = %v", arr[1:4])
	result(w, "arr[:3]  = %v", arr[:3])
	result(w, "arr[3:]  = %v", arr[3:])
	mid := arr[2:4]
	result(w, "len(arr[2:4]) = %d, cap = %d", len(mid), cap(mid))
}

func slicesMake(w io.Writer) {
	s := make([]string, 2, 5)
	result(w, "make([]string, 2, 5): %q len=%d cap=%d", s, len(s), cap(s))
}

func slicesAppend(w io.Writer) {
	var s []int
	s = append(s, 1)
	s = append(s, 2, 3)
	more := []int{4, 5}
	s = append(s, more...)
	result(w, "s = %v", s)
}

func slicesGrowth(w io.Writer) {
	s := make([]int, 0, 1)
	prev := cap(s)
	for i := 0; i < 10; i++ {
		s = append(s, i)
		if cap(s) != prev {
			result(w, "len=%d: cap grew %d → %d", len(s), prev, cap(s))
			prev = cap(s)
		}
	}
}

func slicesCopy(w io.Writer) {
	src := []int{1, 2, 3}
	dst := make([]int, len(src))
	n := copy(dst, src)
	dst[0] = 99
	result(w, "copied %d elements: src = %v, dst = %v", n, src, dst)
}

func slicesShared(w io.Writer) {
	base := []int{1, 2, 3, 4}
	view := base[1:3]
	view[0] = 200
	result(w, "base = %v after view[0] = 200", base)
}

func slicesNil(w io.Writer) {
	var nilSlice []int
	empty := []int{}
	result(w, "nil slice:   len=%d, == nil: %t", len(nilSlice), nilSlice == nil)
	result(w, "empty slice: len=%d, == nil: %t", len(empty), empty == nil)
}
