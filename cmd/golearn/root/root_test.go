package root

import (
	"bytes"
	"strings"
	"testing"
)

func runRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func assertInOrder(t *testing.T, out string, parts ...string) {
	t.Helper()
	rest := out
	for _, p := range parts {
		i := strings.Index(rest, p)
		if i < 0 {
			t.Fatalf("expected %q in order in output:\n%s", p, out)
		}
		rest = rest[i+len(p):]
	}
}

func TestRoot_FirstTopicThenExit(t *testing.T) {
	out, err := runRoot(t, "1\n0\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	assertInOrder(t, out,
		"WELCOME TO GO TUTORIAL",
		"   1. Variables",
		"GO VARIABLES TUTORIAL",
		"→ Value: Hello, Go!",
		"Tutorial Complete!",
		"AVAILABLE TOPICS",
		"Thank You for Learning Go!",
	)
}

func TestRoot_InvalidThenExit(t *testing.T) {
	out, err := runRoot(t, "99\n0\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	assertInOrder(t, out,
		"AVAILABLE TOPICS",
		"❌ Invalid choice! Please enter a number between 0 and 15.",
		"AVAILABLE TOPICS",
		"Thank You for Learning Go!",
	)
}

func TestRoot_BananaThenLoops(t *testing.T) {
	out, err := runRoot(t, "banana\n5\n0\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	assertInOrder(t, out,
		"❌ Invalid input! Please enter a number.",
		"GO CONDITIONS TUTORIAL",
		"Thank You for Learning Go!",
	)
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	if _, err := runRoot(t, "", "extra"); err == nil {
		t.Fatalf("expected error for positional argument")
	}
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, err := runRoot(t, "0\n", "--log-level", "chatty")
	if err == nil || !strings.Contains(err.Error(), "invalid log level") {
		t.Fatalf("unexpected error: %v", err)
	}
}
