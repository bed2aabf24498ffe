// Package dispatch turns command-line arguments into a shape calculation.
//
// The flow is: resolve the shape name through the registry, print the
// description when no parameters follow, otherwise parse every parameter as a
// float, check the count and render the result. Every failure is a typed error
// carrying ExitCode() so the entry routine can map it to a process status.
package dispatch

import (
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/flarebyte/describe-object/internal/registry"
	"github.com/flarebyte/describe-object/internal/render"
)

// Dispatcher resolves shapes by name and writes results to Stdout. With
// Strict set, parameters beyond the required count are an error instead of
// being ignored.
type Dispatcher struct {
	Registry *registry.Registry
	Stdout   io.Writer
	Format   render.Format
	Strict   bool
	Log      log.FieldLogger
}

// Run executes one invocation. args[0] is the shape name, the rest are
// numeric parameters.
func (d *Dispatcher) Run(args []string) error {
	if len(args) < 1 {
		return UsageError{}
	}
	name := args[0]
	s, ok := d.Registry.Create(name)
	if !ok {
		return UnknownShapeError{Name: name}
	}
	if len(args) == 1 {
		_, err := fmt.Fprintln(d.Stdout, s.Description())
		return err
	}

	params, err := ParseParams(args[1:])
	if err != nil {
		return err
	}

	logger := d.logger().WithFields(log.Fields{"shape": name, "params": len(params)})
	required := s.RequiredParams()
	if len(params) < required {
		if _, err := fmt.Fprintln(d.Stdout, s.Description()); err != nil {
			return err
		}
		return InsufficientParameterError{Expected: required, Got: len(params)}
	}
	if extra := len(params) - required; extra > 0 {
		if d.Strict {
			return ExtraParameterError{Expected: required, Got: len(params)}
		}
		logger.WithField("extra", extra).Debug("ignoring extra parameters")
	}

	logger.Debug("calculating")
	res, err := s.Calculate(params)
	if err != nil {
		return CalculationError{Name: name, Err: err}
	}
	if res.Degenerate() {
		logger.Warn("degenerate geometry: result contains values that are not real numbers")
	}
	return render.Write(d.Stdout, d.Format, res)
}

func (d *Dispatcher) logger() log.FieldLogger {
	if d.Log != nil {
		return d.Log
	}
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

// ParseParams converts every token to a float64, stopping at the first
// token that is not a number.
func ParseParams(tokens []string) ([]float64, error) {
	params := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, ParameterParseError{Token: tok}
		}
		params = append(params, v)
	}
	return params, nil
}
