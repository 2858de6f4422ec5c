package menu

import (
	"fmt"
	"strings"
)

const width = 60

var (
	doubleRule = strings.Repeat("═", width)
	singleRule = strings.Repeat("─", width)
)

// RenderBanner prints the welcome banner.
func (c *Controller) RenderBanner() {
	fmt.Fprintln(c.out, "\n"+doubleRule)
	fmt.Fprintln(c.out, "╔════════════════════════════════════════════════════════╗")
	fmt.Fprintln(c.out, "║                                                        ║")
	fmt.Fprintln(c.out, "║          🚀  WELCOME TO GO TUTORIAL  🚀               ║")
	fmt.Fprintln(c.out, "║                                                        ║")
	fmt.Fprintln(c.out, "║         Learn Go Programming Step by Step             ║")
	fmt.Fprintln(c.out, "║                                                        ║")
	fmt.Fprintln(c.out, "╚════════════════════════════════════════════════════════╝")
	fmt.Fprintln(c.out, doubleRule+"\n")
}

// RenderMenu prints the numbered topics two per line, the exit option and
// the prompt. The prompt has no trailing newline.
func (c *Controller) RenderMenu() {
	fmt.Fprintln(c.out, "\n"+doubleRule)
	fmt.Fprintln(c.out, "📚  AVAILABLE TOPICS")
	fmt.Fprintln(c.out, doubleRule)
	fmt.Fprintln(c.out)

	for i, t := range c.topics {
		fmt.Fprintf(c.out, "  %2d. %-20s", i+1, t.Name)
		if (i+1)%2 == 0 {
			fmt.Fprintln(c.out)
		}
	}
	if len(c.topics)%2 != 0 {
		fmt.Fprintln(c.out)
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, singleRule)
	fmt.Fprintln(c.out, "  0. Exit Tutorial")
	fmt.Fprintln(c.out, doubleRule)
	fmt.Fprint(c.out, "\n👉 Enter your choice: ")
}

func (c *Controller) renderGoodbye() {
	fmt.Fprintln(c.out, "\n"+doubleRule)
	fmt.Fprintln(c.out, "╔════════════════════════════════════════════════════════╗")
	fmt.Fprintln(c.out, "║                                                        ║")
	fmt.Fprintln(c.out, "║           ✨  Thank You for Learning Go!  ✨          ║")
	fmt.Fprintln(c.out, "║                                                        ║")
	fmt.Fprintln(c.out, "║              Keep Coding and Have Fun! 🎉             ║")
	fmt.Fprintln(c.out, "║                                                        ║")
	fmt.Fprintln(c.out, "╚════════════════════════════════════════════════════════╝")
	fmt.Fprintln(c.out, doubleRule+"\n")
}

func (c *Controller) renderDivider() {
	fmt.Fprintln(c.out, "\n"+singleRule)
}
