// Package lesson loads the tutorial content. Lessons are YAML documents
// embedded in the binary, validated against a CUE schema and decoded with
// yaml.v3. The catalog is immutable once loaded.
package lesson

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed lessons/*.yaml
var embedded embed.FS

const indexFile = "index.yaml"

// Demos resolves the runnable snippets that lesson sections reference.
type Demos interface {
	Has(name string) bool
	Run(name string, w io.Writer) error
}

// Catalog holds the lessons in menu order.
type Catalog struct {
	lessons []Lesson
	byID    map[string]int
}

// LoadEmbedded loads the catalog compiled into the binary.
func LoadEmbedded(demos Demos) (*Catalog, error) {
	sub, err := fs.Sub(embedded, "lessons")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded lessons: %w", err)
	}
	return Load(sub, demos)
}

// Load reads index.yaml and every lesson it lists from fsys. Each document
// must satisfy schema.cue, lesson ids must match their file names, and every
// demo a section names must be known to demos. A nil demos skips the demo
// check.
func Load(fsys fs.FS, demos Demos) (*Catalog, error) {
	v, err := newValidator()
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, indexFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read lesson index: %w", err)
	}
	if err := v.validate("#Index", indexFile, data); err != nil {
		return nil, err
	}
	var idx Index
	if err := decodeStrict(data, &idx); err != nil {
		return nil, fmt.Errorf("invalid document %s: %v", indexFile, err)
	}
	if !IsSupportedCatalogVersion(idx.CatalogVersion) {
		return nil, fmt.Errorf("unsupported catalogVersion: %q (supported: %s)", idx.CatalogVersion, SupportedCatalogVersionsCSV())
	}

	c := &Catalog{
		lessons: make([]Lesson, 0, len(idx.Lessons)),
		byID:    make(map[string]int, len(idx.Lessons)),
	}
	for _, id := range idx.Lessons {
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("duplicate lesson in index: %s", id)
		}
		l, err := loadLesson(fsys, v, id)
		if err != nil {
			return nil, err
		}
		if err := checkDemos(l, demos); err != nil {
			return nil, err
		}
		c.byID[id] = len(c.lessons)
		c.lessons = append(c.lessons, l)
	}
	return c, nil
}

func loadLesson(fsys fs.FS, v *validator, id string) (Lesson, error) {
	name := id + ".yaml"
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Lesson{}, fmt.Errorf("failed to read lesson %s: %w", id, err)
	}
	if err := v.validate("#Lesson", name, data); err != nil {
		return Lesson{}, err
	}
	var l Lesson
	if err := decodeStrict(data, &l); err != nil {
		return Lesson{}, fmt.Errorf("invalid document %s: %v", name, err)
	}
	if l.ID != id {
		return Lesson{}, fmt.Errorf("lesson id mismatch in %s: got %q", name, l.ID)
	}
	return l, nil
}

func checkDemos(l Lesson, demos Demos) error {
	if demos == nil {
		return nil
	}
	for i, s := range l.Sections {
		if s.Demo != "" && !demos.Has(s.Demo) {
			return fmt.Errorf("lesson %s section %d: unknown demo %q", l.ID, i+1, s.Demo)
		}
	}
	return nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// Len returns the number of lessons.
func (c *Catalog) Len() int { return len(c.lessons) }

// Lessons returns the lessons in menu order. The slice is a copy.
func (c *Catalog) Lessons() []Lesson {
	out := make([]Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// Lookup returns the lesson with the given id.
func (c *Catalog) Lookup(id string) (Lesson, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Lesson{}, false
	}
	return c.lessons[i], true
}
