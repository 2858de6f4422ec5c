package list

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/flarebyte/golearn/internal/app"
	"github.com/flarebyte/golearn/internal/topic"
	"github.com/spf13/cobra"
)

type entry struct {
	Number int    `json:"number"`
	ID     string `json:"id"`
	Name   string `json:"name"`
}

// NewCmd implements `golearn list`. logLevel points at the root's
// persistent --log-level value.
func NewCmd(logLevel *string) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List the tutorial topics without starting the menu",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, _, err := app.Setup(cmd.ErrOrStderr(), *logLevel)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), format, entries(topics))
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table|json|yaml")
	return cmd
}

func entries(topics []topic.Topic) []entry {
	out := make([]entry, 0, len(topics))
	for i, t := range topics {
		out = append(out, entry{Number: i + 1, ID: t.ID, Name: t.Name})
	}
	return out
}

func write(w io.Writer, format string, es []entry) error {
	switch format {
	case "table":
		for _, e := range es {
			if _, err := fmt.Fprintf(w, "%2d  %-12s %s\n", e.Number, e.ID, e.Name); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"topics": es})
	case "yaml":
		b, err := marshalYAML(es)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unsupported format: %q (expected table, json or yaml)", format)
	}
}
