package root

import (
	"github.com/flarebyte/golearn/cmd/golearn/list"
	"github.com/flarebyte/golearn/cmd/golearn/show"
	"github.com/flarebyte/golearn/cmd/golearn/version"
	"github.com/flarebyte/golearn/internal/app"
	"github.com/flarebyte/golearn/internal/logging"
	"github.com/flarebyte/golearn/internal/menu"
	"github.com/spf13/cobra"
)

var logLevel string

// NewRootCmd creates the root command for golearn. Without a subcommand it
// starts the interactive tutorial on stdin/stdout.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "golearn",
		Short: "Interactive Go tutorial: pick a topic, read it, run its examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, log, err := app.Setup(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}
			ctl := menu.New(topics, cmd.InOrStdin(), cmd.OutOrStdout(), menu.WithLogger(log))
			return ctl.Run(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "Diagnostic log level on stderr (debug|info|warn|error)")

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(list.NewCmd(&logLevel))
	cmd.AddCommand(show.NewCmd(&logLevel))

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
