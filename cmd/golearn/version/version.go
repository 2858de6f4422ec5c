package version

import (
	"fmt"
	"os"
	"runtime"

	"github.com/flarebyte/golearn/cli"
	"github.com/flarebyte/golearn/internal/buildinfo"
	"github.com/spf13/cobra"
)

var (
	flagShort bool
	flagJSON  bool
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagShort {
			_, err := fmt.Fprintln(os.Stdout, buildinfo.ResolvedVersion())
			return err
		}
		if !flagJSON {
			_, err := fmt.Fprintf(os.Stdout, "golearn %s\n", buildinfo.Summary())
			return err
		}

		out := map[string]any{
			"name":      "golearn",
			"version":   buildinfo.ResolvedVersion(),
			"commit":    buildinfo.Commit,
			"date":      buildinfo.ResolvedDate(),
			"date_nice": cli.NiceDate(),
			"go":        runtime.Version(),
			"go_os":     runtime.GOOS,
			"go_arch":   runtime.GOARCH,
		}
		return encodeJSON(os.Stdout, out)
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	VersionCmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
}
