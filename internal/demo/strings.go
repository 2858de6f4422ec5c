package demo

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

func init() {
	Register("strings.immutable", stringsImmutable)
	Register("strings.bytes-runes", stringsBytesRunes)
	Register("strings.concat", stringsConcat)
	Register("strings.builder", stringsBuilder)
	Register("strings.package", stringsPackage)
	Register("strings.convert", stringsConvert)
}

func stringsImmutable(w io.Writer) {
	s := "hello"
	b := []byte(s)
	b[0] = 'j'
	result(w, "original: %s, modified copy: %s", s, string(b))
}

func stringsBytesRunes(w io.Writer) {
	s := "Go™ 🚀"
	result(w, "len(%q) = %d bytes", s, len(s))
	result(w, "utf8.RuneCountInString = %d runes", utf8.RuneCountInString(s))
	result(w, "[]rune: %d elements, s[0] = %d ('%c')", len([]rune(s)), s[0], s[0])
}

func stringsConcat(w io.Writer) {
	first, last := "Ada", "Lovelace"
	full := first + " " + last
	full += "!"
	result(w, "%s", full)
}

func stringsBuilder(w io.Writer) {
	var sb strings.Builder
	for i := 1; i <= 3; i++ {
		sb.WriteString("item")
		sb.WriteString(strconv.Itoa(i))
		if i < 3 {
			sb.WriteByte(',')
		}
	}
	result(w, "built: %s (len %d)", sb.String(), sb.Len())
}

func stringsPackage(w io.Writer) {
	s := "  The Go Programming Language  "
	t := strings.TrimSpace(s)
	result(w, "TrimSpace: %q", t)
	result(w, "ToUpper:   %q", strings.ToUpper(t))
	result(w, "Contains \"Go\": %t", strings.Contains(t, "Go"))
	result(w, "Index \"Go\": %d", strings.Index(t, "Go"))
	result(w, "Split: %q", strings.Split("a,b,c", ","))
	result(w, "Fields: %q", strings.Fields(t))
	result(w, "Replace: %q", strings.ReplaceAll(t, "Go", "Golang"))
	result(w, "Repeat: %q", strings.Repeat("ab", 3))
}

func stringsConvert(w io.Writer) {
	n, err := strconv.Atoi("123")
	result(w, "Atoi(\"123\") = %d, err = %v", n, err)
	_, err = strconv.Atoi("12a")
	result(w, "Atoi(\"12a\") err = %v", err)
	result(w, "Itoa(456) = %q", strconv.Itoa(456))
	f, _ := strconv.ParseFloat("3.25", 64)
	result(w, "ParseFloat(\"3.25\") = %v", f)
}
