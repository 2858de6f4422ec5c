package cli

import "strings"

// Version and Date can be injected by release scripts, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/golearn/cli.Version=1.2.3' -X 'github.com/flarebyte/golearn/cli.Date=2026-02-09'"
var (
	Version string
	Date    string
)

// NiceDate returns Date with dashes replaced by spaces, or "" when unset.
func NiceDate() string {
	return strings.ReplaceAll(Date, "-", " ")
}
