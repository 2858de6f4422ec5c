package list

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sample() []entry {
	return []entry{
		{Number: 1, ID: "variables", Name: "Variables"},
		{Number: 3, ID: "data-types", Name: "Data Types"},
	}
}

func TestMarshalYAML_Canonical(t *testing.T) {
	b, err := marshalYAML(sample())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "topics:\n" +
		"  - number: 1\n    id: variables\n    name: Variables\n" +
		"  - number: 3\n    id: data-types\n    name: Data Types\n"
	if string(b) != want {
		t.Fatalf("unexpected YAML\nwant:\n%s\ngot:\n%s", want, string(b))
	}
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := write(&buf, "table", sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := " 1  variables    Variables\n 3  data-types   Data Types\n"
	if buf.String() != want {
		t.Fatalf("unexpected table: %q", buf.String())
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := write(&buf, "json", sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got struct {
		Topics []entry `json:"topics"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Topics) != 2 || got.Topics[1].ID != "data-types" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := write(&bytes.Buffer{}, "xml", sample())
	if err == nil || !strings.Contains(err.Error(), "unsupported format: \"xml\"") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListCmd_AllTopics(t *testing.T) {
	level := "warn"
	cmd := NewCmd(&level)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "table"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 15 {
		t.Fatalf("expected 15 lines, got %d:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[14], "15  defer") {
		t.Fatalf("unexpected last line: %q", lines[14])
	}
}
