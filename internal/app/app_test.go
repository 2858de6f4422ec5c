package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_BuildsTopicsAndLogs(t *testing.T) {
	var logs bytes.Buffer
	topics, _, err := Setup(&logs, "debug")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if len(topics) != 15 {
		t.Fatalf("expected 15 topics, got %d", len(topics))
	}
	if !strings.Contains(logs.String(), "catalog loaded") {
		t.Fatalf("expected debug log, got %q", logs.String())
	}
}

func TestSetup_InvalidLogLevel(t *testing.T) {
	if _, _, err := Setup(&bytes.Buffer{}, "chatty"); err == nil {
		t.Fatalf("expected error")
	}
}
