package buildinfo

import (
	"strings"

	"github.com/flarebyte/golearn/cli"
)

// Package buildinfo exposes version metadata for golearn. Values are set at
// build time via -ldflags; cli.Version and cli.Date act as fallbacks for
// release scripts that only know about the cli package.

var (
	// Version is the semantic version. Falls back to cli.Version, then "dev".
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build date (optional). Falls back to cli.Date.
	Date = ""
)

// ResolvedVersion returns the effective version string.
func ResolvedVersion() string {
	v := Version
	if v == "" {
		v = cli.Version
	}
	if v == "" {
		v = "dev"
	}
	return v
}

// ResolvedDate returns the effective build date, or "".
func ResolvedDate() string {
	if Date != "" {
		return Date
	}
	return cli.Date
}

// Summary returns a concise single-line version string.
func Summary() string {
	v := ResolvedVersion()
	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d := ResolvedDate(); d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
