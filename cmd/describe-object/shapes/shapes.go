package shapes

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/flarebyte/describe-object/internal/render"
	"github.com/flarebyte/describe-object/internal/shape"
)

// Lister is the part of the registry the command needs.
type Lister interface {
	Names() []string
	Create(name string) (shape.Shape, bool)
}

// Loader builds the registry and resolves the output format for the current
// invocation.
type Loader func(cmd *cobra.Command) (Lister, render.Format, error)

type entry struct {
	Name   string `json:"name" yaml:"name"`
	Params int    `json:"params" yaml:"params"`
}

// NewCmd implements `describe-object shapes`.
func NewCmd(stdout io.Writer, load Loader) *cobra.Command {
	return &cobra.Command{
		Use:           "shapes",
		Short:         "List the registered shapes and their parameter counts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, format, err := load(cmd)
			if err != nil {
				return err
			}
			entries := collect(reg)
			switch format {
			case render.FormatJSON:
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			case render.FormatYAML:
				enc := yaml.NewEncoder(stdout)
				enc.SetIndent(2)
				if err := enc.Encode(entries); err != nil {
					_ = enc.Close()
					return err
				}
				return enc.Close()
			default:
				return writeTable(stdout, entries)
			}
		},
	}
}

func collect(reg Lister) []entry {
	names := reg.Names()
	out := make([]entry, 0, len(names))
	for _, name := range names {
		s, ok := reg.Create(name)
		if !ok {
			continue
		}
		out = append(out, entry{Name: name, Params: s.RequiredParams()})
	}
	return out
}

func writeTable(w io.Writer, entries []entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "NAME\tPARAMS"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(tw, "%s\t%d\n", e.Name, e.Params); err != nil {
			return err
		}
	}
	return tw.Flush()
}
