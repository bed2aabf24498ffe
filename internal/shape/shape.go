package shape

import (
	"fmt"
	"math"
	"strings"
)

// Program is the command name used in usage text.
const Program = "describe-object"

// Shape describes one geometric figure and computes its quantities.
type Shape interface {
	// Name is the registry name, e.g. "circle".
	Name() string
	// Description is the usage text printed when no parameters are given.
	Description() string
	// RequiredParams is the number of leading parameters Calculate reads.
	RequiredParams() int
	// Calculate assumes len(params) >= RequiredParams(). Extra values are ignored.
	Calculate(params []float64) (Result, error)
}

// Factory builds a fresh Shape.
type Factory func() Shape

// Quantity is a labelled numeric value.
type Quantity struct {
	Label string
	Value float64
}

// Result is the outcome of a calculation.
type Result struct {
	Shape      string
	Heading    string
	Inputs     []Quantity
	Quantities []Quantity
}

// Degenerate reports whether any computed quantity is not a finite number.
func (r Result) Degenerate() bool {
	for _, q := range r.Quantities {
		if !IsFinite(q.Value) {
			return true
		}
	}
	return false
}

// String renders the result as text: a heading line followed by one
// "  Label: value" line per quantity.
func (r Result) String() string {
	var b strings.Builder
	b.WriteString(r.Heading)
	b.WriteString(":")
	for _, q := range r.Quantities {
		b.WriteString("\n  ")
		b.WriteString(q.Label)
		b.WriteString(": ")
		b.WriteString(FormatValue(q.Value))
	}
	return b.String()
}

// FormatValue renders v with two decimal places.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func usage(name string, params ...string) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, "<"+p+">")
	}
	return "    " + Program + " " + name + " " + strings.Join(parts, " ")
}
