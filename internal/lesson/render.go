package lesson

import (
	"fmt"
	"io"
	"strings"
)

const ruleWidth = 60

// Render writes a lesson: header, numbered sections, then the takeaway
// footer. Section demos run through demos in place, so their output sits
// directly under the code they execute.
func Render(w io.Writer, l Lesson, demos Demos) error {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintf(w, "  %s\n", l.Heading)
	fmt.Fprintln(w, rule+"\n")

	if l.Intro != "" {
		writeIndented(w, l.Intro)
		fmt.Fprintln(w)
	}

	for i, s := range l.Sections {
		if err := renderSection(w, i+1, s, demos); err != nil {
			return fmt.Errorf("lesson %s: %w", l.ID, err)
		}
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  ✅ Tutorial Complete!")
	if len(l.Takeaway) == 1 {
		fmt.Fprintf(w, "  💡 Key Takeaway: %s\n", l.Takeaway[0])
	} else {
		fmt.Fprintln(w, "  💡 Key Takeaways:")
		for _, t := range l.Takeaway {
			fmt.Fprintf(w, "     • %s\n", t)
		}
	}
	fmt.Fprintln(w, rule+"\n")
	return nil
}

func renderSection(w io.Writer, n int, s Section, demos Demos) error {
	fmt.Fprintf(w, "┌─ %d. %s\n", n, s.Title)
	fmt.Fprintln(w, "│")
	if s.Text != "" {
		writeIndented(w, s.Text)
	}
	if s.Code != "" {
		if s.Text != "" {
			fmt.Fprintln(w)
		}
		writeIndented(w, s.Code)
	}
	if s.Demo != "" {
		if s.Text != "" || s.Code != "" {
			fmt.Fprintln(w)
		}
		if demos == nil {
			return fmt.Errorf("section %d: no demo runner for %q", n, s.Demo)
		}
		if err := demos.Run(s.Demo, w); err != nil {
			return fmt.Errorf("section %d: %w", n, err)
		}
	}
	for _, note := range s.Notes {
		fmt.Fprintf(w, "   💡 %s\n", note)
	}
	fmt.Fprintln(w)
	return nil
}

// writeIndented prints each line of a block with a three-space margin.
// Trailing newlines from YAML block scalars are dropped.
func writeIndented(w io.Writer, block string) {
	block = strings.TrimRight(block, "\n")
	for _, line := range strings.Split(block, "\n") {
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintln(w, "   "+line)
	}
}
