package show

import (
	"fmt"

	"github.com/flarebyte/golearn/internal/app"
	"github.com/flarebyte/golearn/internal/topic"
	"github.com/spf13/cobra"
)

// NewCmd implements `golearn show <number|id>`, which prints one topic and
// exits.
func NewCmd(logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:           "show <number|id>",
		Short:         "Print a single topic without starting the menu",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, log, err := app.Setup(cmd.ErrOrStderr(), *logLevel)
			if err != nil {
				return err
			}
			t, ok := topic.Find(topics, args[0])
			if !ok {
				return fmt.Errorf("unknown topic: %q (expected 1-%d or a topic id)", args[0], len(topics))
			}
			log.Debug().Str("component", "show").Str("topic", t.ID).Msg("showing topic")
			t.Handler(cmd.OutOrStdout())
			return nil
		},
	}
}
