package root

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flarebyte/describe-object/internal/config"
	"github.com/flarebyte/describe-object/internal/logging"
	"github.com/flarebyte/describe-object/internal/registry"
	"github.com/flarebyte/describe-object/internal/render"
)

type options struct {
	configPath string
	logLevel   string
	format     string
	strict     bool
}

// session is the state built once per invocation: the registry and the
// effective settings after merging flags over config.
type session struct {
	registry *registry.Registry
	format   render.Format
	strict   bool
	log      *log.Logger
}

func newSession(cmd *cobra.Command, opts *options, stderr io.Writer) (session, error) {
	var cfg config.Config
	if opts.configPath != "" {
		c, err := config.Load(opts.configPath)
		if err != nil {
			return session{}, err
		}
		cfg = c
	}

	flags := cmd.Flags()
	level := opts.logLevel
	if !flags.Changed("log-level") && cfg.HasLogLevel {
		level = cfg.LogLevel
	}
	s := session{log: logging.New(stderr, level)}

	s.registry = registry.NewDefault()
	if err := cfg.Apply(s.registry); err != nil {
		return session{}, err
	}

	s.format = render.FormatText
	if flags.Changed("format") {
		f, err := render.ParseFormat(opts.format)
		if err != nil {
			return session{}, err
		}
		s.format = f
	} else if cfg.Output.HasFormat {
		s.format = cfg.Output.Format
	}

	if cfg.HasStrict {
		s.strict = cfg.Strict
	}
	if flags.Changed("strict") {
		s.strict = opts.strict
	}

	s.log.WithFields(log.Fields{
		"config": opts.configPath,
		"shapes": len(s.registry.Names()),
		"format": s.format,
		"strict": s.strict,
	}).Debug("registry ready")
	return s, nil
}
