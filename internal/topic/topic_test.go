package topic

import (
	"bytes"
	"testing"

	"github.com/flarebyte/golearn/internal/demo"
	"github.com/flarebyte/golearn/internal/lesson"
)

func loadTopics(t *testing.T) []Topic {
	t.Helper()
	c, err := lesson.LoadEmbedded(demo.Runner{})
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return Build(c, demo.Runner{})
}

func TestBuild_OrderMatchesMenu(t *testing.T) {
	topics := loadTopics(t)
	if len(topics) != 15 {
		t.Fatalf("expected 15 topics, got %d", len(topics))
	}
	if topics[0].Name != "Variables" || topics[4].Name != "Conditions" || topics[14].Name != "Defer" {
		t.Fatalf("unexpected order: %q %q %q", topics[0].Name, topics[4].Name, topics[14].Name)
	}
}

func TestHandlers_Idempotent(t *testing.T) {
	for _, tp := range loadTopics(t) {
		var first, second bytes.Buffer
		tp.Handler(&first)
		tp.Handler(&second)
		if first.Len() == 0 {
			t.Fatalf("topic %s printed nothing", tp.ID)
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			t.Fatalf("topic %s output differs between invocations", tp.ID)
		}
		if bytes.Contains(first.Bytes(), []byte("⚠️  lesson")) {
			t.Fatalf("topic %s reported a render error:\n%s", tp.ID, first.String())
		}
	}
}

func TestFind(t *testing.T) {
	topics := loadTopics(t)
	cases := []struct {
		key    string
		wantID string
		ok     bool
	}{
		{"1", "variables", true},
		{"15", "defer", true},
		{"maps", "maps", true},
		{"0", "", false},
		{"16", "", false},
		{"-3", "", false},
		{"nope", "", false},
	}
	for _, tc := range cases {
		got, ok := Find(topics, tc.key)
		if ok != tc.ok || got.ID != tc.wantID {
			t.Fatalf("Find(%q) = (%q, %t), want (%q, %t)", tc.key, got.ID, ok, tc.wantID, tc.ok)
		}
	}
}
