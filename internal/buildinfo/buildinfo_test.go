package buildinfo

import (
	"testing"

	"github.com/flarebyte/golearn/cli"
)

func TestSummary(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	oldCliVersion, oldCliDate := cli.Version, cli.Date
	defer func() {
		Version, Commit, Date = oldVersion, oldCommit, oldDate
		cli.Version, cli.Date = oldCliVersion, oldCliDate
	}()

	cases := []struct {
		name                      string
		version, commit, date     string
		cliVersion, cliDate, want string
	}{
		{name: "defaults", want: "dev"},
		{name: "explicit", version: "1.2.3", want: "1.2.3"},
		{name: "cli fallback", cliVersion: "0.9.0", cliDate: "2026-02-09", want: "0.9.0 (date=2026-02-09)"},
		{name: "commit shortened", version: "1.0.0", commit: "abcdef0123456", date: "2026-10-19", want: "1.0.0 (commit=abcdef0, date=2026-10-19)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			Version, Commit, Date = tc.version, tc.commit, tc.date
			cli.Version, cli.Date = tc.cliVersion, tc.cliDate
			if got := Summary(); got != tc.want {
				t.Fatalf("Summary() = %q, want %q", got, tc.want)
			}
		})
	}
}
