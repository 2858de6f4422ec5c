// Package menu drives the interactive tutorial: it shows the topic menu,
// reads one choice per line and dispatches to the matching topic handler
// until the user exits.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flarebyte/golearn/internal/topic"
	"github.com/rs/zerolog"
)

// Controller runs the read-evaluate-print loop over a fixed topic table.
type Controller struct {
	topics []topic.Topic
	in     *bufio.Reader
	out    io.Writer
	log    zerolog.Logger
	state  State
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New returns a controller over topics. Menu choice i selects topics[i-1].
// The table is copied and never changes afterwards.
func New(topics []topic.Topic, in io.Reader, out io.Writer, opts ...Option) *Controller {
	c := &Controller{
		topics: append([]topic.Topic(nil), topics...),
		in:     bufio.NewReader(in),
		out:    out,
		log:    zerolog.Nop(),
		state:  Running,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("component", "menu").Logger()
	return c
}

// State returns the current loop state.
func (c *Controller) State() State { return c.state }

// ReadChoice reads one line and parses it as an integer. It returns
// *ParseError for non-numeric input, io.EOF when the input is exhausted and
// *InputStreamError for any other read failure. A last line without a
// trailing newline is still parsed.
func (c *Controller) ReadChoice() (int, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return 0, &InputStreamError{Err: err}
		}
		if line == "" {
			return 0, io.EOF
		}
	}
	s := strings.TrimSpace(line)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return n, nil
}

// Dispatch runs the handler for choice. 0 runs nothing and returns
// Terminate; 1..N runs exactly one handler; anything else prints an
// invalid-choice message.
func (c *Controller) Dispatch(choice int) Outcome {
	if choice == 0 {
		return Terminate
	}
	fmt.Fprintln(c.out)
	if choice < 1 || choice > len(c.topics) {
		err := &OutOfRangeError{Choice: choice, Max: len(c.topics)}
		c.log.Debug().Err(err).Msg("invalid choice")
		fmt.Fprintf(c.out, "❌ Invalid choice! Please enter a number between 0 and %d.\n", len(c.topics))
		return Invalid
	}
	t := c.topics[choice-1]
	c.log.Debug().Int("choice", choice).Str("topic", t.ID).Msg("dispatching topic")
	t.Handler(c.out)
	return Handled
}

// Run shows the banner once, then loops over menu, read and dispatch. It
// returns nil when the user chooses 0 or the input ends, and an
// *InputStreamError when reading fails.
func (c *Controller) Run(ctx context.Context) error {
	c.state = Running
	c.RenderBanner()
	for {
		if err := ctx.Err(); err != nil {
			c.state = Terminated
			return err
		}
		c.RenderMenu()
		c.state = AwaitingInput

		choice, err := c.ReadChoice()
		if err != nil {
			var perr *ParseError
			switch {
			case errors.As(err, &perr):
				c.log.Debug().Str("input", perr.Input).Msg("unparsable choice")
				fmt.Fprintln(c.out, "\n❌ Invalid input! Please enter a number.")
				c.state = Running
				continue
			case errors.Is(err, io.EOF):
				c.log.Debug().Msg("input closed")
				fmt.Fprintln(c.out)
				return c.terminate()
			default:
				c.log.Debug().Err(err).Msg("input stream failure")
				c.state = Terminated
				return err
			}
		}

		c.state = Dispatching
		if c.Dispatch(choice) == Terminate {
			return c.terminate()
		}
		c.renderDivider()
		c.state = Running
	}
}

func (c *Controller) terminate() error {
	c.renderGoodbye()
	c.state = Terminated
	return nil
}
