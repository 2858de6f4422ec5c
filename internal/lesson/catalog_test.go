package lesson

import (
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/flarebyte/golearn/internal/demo"
)

const minimalLesson = `id: basics
title: Basics
heading: BASICS
sections:
  - title: First
    text: hello
    demo: basics.hello
takeaway:
  - keep going
`

type fakeDemos map[string]string

func (f fakeDemos) Has(name string) bool {
	_, ok := f[name]
	return ok
}

func (f fakeDemos) Run(name string, w io.Writer) error {
	out, ok := f[name]
	if !ok {
		return demo.ErrUnknown{}
	}
	_, err := io.WriteString(w, out)
	return err
}

func catalogFS(index string, files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{indexFile: &fstest.MapFile{Data: []byte(index)}}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestLoadEmbedded_AllLessonsValid(t *testing.T) {
	c, err := LoadEmbedded(demo.Runner{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 15 {
		t.Fatalf("expected 15 lessons, got %d", c.Len())
	}
	want := []string{
		"Variables", "Constants", "Data Types", "Operators", "Conditions",
		"Loops", "Functions", "Strings", "Pointers", "Arrays",
		"Slices", "Maps", "Structs", "Interfaces", "Defer",
	}
	for i, l := range c.Lessons() {
		if l.Title != want[i] {
			t.Fatalf("lesson %d: got %q want %q", i+1, l.Title, want[i])
		}
	}
	if _, ok := c.Lookup("defer"); !ok {
		t.Fatalf("expected defer lesson")
	}
}

func TestLoadEmbedded_EveryDemoReferenced(t *testing.T) {
	c, err := LoadEmbedded(demo.Runner{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	used := map[string]bool{}
	for _, l := range c.Lessons() {
		for _, s := range l.Sections {
			if s.Demo != "" {
				used[s.Demo] = true
			}
		}
	}
	for _, name := range demo.Names() {
		if !used[name] {
			t.Fatalf("demo %s is registered but no lesson shows it", name)
		}
	}
}

func TestLoad_Minimal(t *testing.T) {
	fsys := catalogFS("catalogVersion: \"1\"\nlessons: [basics]\n", map[string]string{"basics.yaml": minimalLesson})
	c, err := Load(fsys, fakeDemos{"basics.hello": "hi\n"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	l, ok := c.Lookup("basics")
	if !ok || l.Sections[0].Demo != "basics.hello" {
		t.Fatalf("unexpected lesson: %+v", l)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		index   string
		files   map[string]string
		demos   Demos
		wantErr string
	}{
		{
			name:    "unsupported version",
			index:   "catalogVersion: \"2\"\nlessons: [basics]\n",
			files:   map[string]string{"basics.yaml": minimalLesson},
			wantErr: "unsupported catalogVersion: \"2\" (supported: 1)",
		},
		{
			name:    "empty index",
			index:   "catalogVersion: \"1\"\nlessons: []\n",
			wantErr: "invalid document index.yaml",
		},
		{
			name:    "missing lesson file",
			index:   "catalogVersion: \"1\"\nlessons: [basics]\n",
			wantErr: "failed to read lesson basics",
		},
		{
			name:    "duplicate lesson",
			index:   "catalogVersion: \"1\"\nlessons: [basics, basics]\n",
			files:   map[string]string{"basics.yaml": minimalLesson},
			wantErr: "duplicate lesson in index: basics",
		},
		{
			name:    "id mismatch",
			index:   "catalogVersion: \"1\"\nlessons: [other]\n",
			files:   map[string]string{"other.yaml": minimalLesson},
			wantErr: "lesson id mismatch in other.yaml",
		},
		{
			name:    "unknown field",
			index:   "catalogVersion: \"1\"\nlessons: [basics]\n",
			files:   map[string]string{"basics.yaml": minimalLesson + "author: someone\n"},
			wantErr: "invalid document basics.yaml",
		},
		{
			name:    "no sections",
			index:   "catalogVersion: \"1\"\nlessons: [basics]\n",
			files:   map[string]string{"basics.yaml": "id: basics\ntitle: B\nheading: B\nsections: []\ntakeaway: [x]\n"},
			wantErr: "invalid document basics.yaml",
		},
		{
			name:    "unknown demo",
			index:   "catalogVersion: \"1\"\nlessons: [basics]\n",
			files:   map[string]string{"basics.yaml": minimalLesson},
			demos:   fakeDemos{},
			wantErr: "lesson basics section 1: unknown demo \"basics.hello\"",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(catalogFS(tc.index, tc.files), tc.demos)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("unexpected error\nwant: %s\n got: %s", tc.wantErr, err.Error())
			}
		})
	}
}
