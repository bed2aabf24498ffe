package root

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/coder/quartz"
	"github.com/spf13/cobra"

	"github.com/flarebyte/describe-object/cmd/describe-object/shapes"
	"github.com/flarebyte/describe-object/cmd/describe-object/version"
	"github.com/flarebyte/describe-object/internal/dispatch"
	"github.com/flarebyte/describe-object/internal/logging"
	"github.com/flarebyte/describe-object/internal/render"
	"github.com/flarebyte/describe-object/internal/shape"
)

const longHelp = `Given a shape name and its parameters, prints the perimeter, circumference and area.
With only a shape name, prints how to use that shape.

Flags must come before the shape name. --format also applies to the shapes
subcommand; --strict only applies to calculations.`

type exitCoder interface {
	ExitCode() int
}

// NewRootCmd creates the root command. Positional arguments are
// <shape-name> [param...]; flags must come before the shape name.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   shape.Program + " <shape-name> [param...]",
		Short: "Describe a geometric shape or compute its perimeter and area",
		Long:  longHelp,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, stderr)
			if err != nil {
				return err
			}
			d := &dispatch.Dispatcher{
				Registry: s.registry,
				Stdout:   stdout,
				Format:   s.format,
				Strict:   s.strict,
				Log:      s.log,
			}
			return d.Run(args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	// Everything after the shape name is a parameter, so "-3" stays a number.
	cmd.Flags().SetInterspersed(false)
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (.cue)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", logging.DefaultLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "Output format: text, json or yaml (default text)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject parameters beyond the required count")

	// Subcommands
	cmd.AddCommand(version.NewCmd(stdout, stderr, quartz.NewReal()))
	cmd.AddCommand(shapes.NewCmd(stdout, func(c *cobra.Command) (shapes.Lister, render.Format, error) {
		s, err := newSession(c, opts, stderr)
		if err != nil {
			return nil, "", err
		}
		return s.registry, s.format, nil
	}))

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// Main runs the command and returns the process exit code. Errors are
// printed to stderr as a single line.
func Main(args []string, stdout, stderr io.Writer) int {
	err := Execute(args, stdout, stderr)
	if err == nil {
		return 0
	}
	msg := oneLine(err.Error())
	if strings.TrimSpace(msg) == "" {
		msg = "error"
	}
	_, _ = fmt.Fprintln(stderr, msg)
	code := 1
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			code = c
		}
	}
	return code
}

// oneLine joins multi-line messages (CUE errors, Lua tracebacks) into a single
// line. Single-line messages are returned unchanged.
func oneLine(msg string) string {
	if !strings.ContainsAny(msg, "\r\n") {
		return msg
	}
	lines := strings.FieldsFunc(msg, func(r rune) bool { return r == '\r' || r == '\n' })
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, " ")
}
