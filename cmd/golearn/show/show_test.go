package show

import (
	"bytes"
	"strings"
	"testing"
)

func runShow(t *testing.T, args ...string) (string, error) {
	t.Helper()
	level := "warn"
	cmd := NewCmd(&level)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShow_ByNumberAndID(t *testing.T) {
	byNumber, err := runShow(t, "12")
	if err != nil {
		t.Fatalf("show 12: %v", err)
	}
	byID, err := runShow(t, "maps")
	if err != nil {
		t.Fatalf("show maps: %v", err)
	}
	if !strings.Contains(byNumber, "GO MAPS TUTORIAL") {
		t.Fatalf("unexpected output: %q", byNumber)
	}
	if byNumber != byID {
		t.Fatalf("number and id should render the same topic")
	}
}

func TestShow_Unknown(t *testing.T) {
	_, err := runShow(t, "42")
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "unknown topic: \"42\" (expected 1-15 or a topic id)"
	if err.Error() != want {
		t.Fatalf("unexpected error\nwant: %s\n got: %s", want, err.Error())
	}
}
