// Package topic binds catalog lessons to menu handlers.
package topic

import (
	"fmt"
	"io"
	"strconv"

	"github.com/flarebyte/golearn/internal/lesson"
)

// Handler prints one topic. It takes no input and keeps no state between
// calls, so repeated invocations produce identical output.
type Handler func(w io.Writer)

// Topic is one menu entry.
type Topic struct {
	ID      string
	Name    string
	Handler Handler
}

// Build returns one topic per catalog lesson, in catalog order. The result
// is the menu's dispatch table: entry i is menu choice i+1.
func Build(c *lesson.Catalog, demos lesson.Demos) []Topic {
	lessons := c.Lessons()
	out := make([]Topic, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, Topic{ID: l.ID, Name: l.Title, Handler: lessonHandler(l, demos)})
	}
	return out
}

func lessonHandler(l lesson.Lesson, demos lesson.Demos) Handler {
	return func(w io.Writer) {
		if err := lesson.Render(w, l, demos); err != nil {
			fmt.Fprintf(w, "\n⚠️  %v\n", err)
		}
	}
}

// Find resolves a topic by its 1-based menu number or by id.
func Find(topics []Topic, key string) (Topic, bool) {
	if n, err := strconv.Atoi(key); err == nil {
		if n >= 1 && n <= len(topics) {
			return topics[n-1], true
		}
		return Topic{}, false
	}
	for _, t := range topics {
		if t.ID == key {
			return t, true
		}
	}
	return Topic{}, false
}
