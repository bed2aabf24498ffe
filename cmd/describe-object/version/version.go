package version

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"github.com/spf13/cobra"

	"github.com/flarebyte/describe-object/internal/buildinfo"
	"github.com/flarebyte/describe-object/internal/shape"
)

// NewCmd implements `describe-object version`. The clock stamps the JSON output.
func NewCmd(stdout, stderr io.Writer, clock quartz.Clock) *cobra.Command {
	var flagShort, flagJSON bool
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Print the CLI version",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagShort || !flagJSON {
				_, err := fmt.Fprintf(stdout, "%s %s\n", shape.Program, buildinfo.Summary())
				return err
			}

			// JSON goes to stdout, a human friendly line to stderr.
			_, _ = fmt.Fprintf(stderr, "%s version: %s\n", shape.Program, buildinfo.Summary())
			out := map[string]any{
				"version":   buildinfo.Resolved(),
				"commit":    buildinfo.Commit,
				"date":      buildinfo.Date,
				"built_by":  buildinfo.BuiltBy,
				"go":        runtime.Version(),
				"go_os":     runtime.GOOS,
				"go_arch":   runtime.GOARCH,
				"timestamp": clock.Now().UTC().Format(time.RFC3339Nano),
			}
			return encodeJSON(stdout, out)
		},
	}
	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	return cmd
}
