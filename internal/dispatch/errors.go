package dispatch

import (
	"fmt"

	"github.com/flarebyte/describe-object/internal/shape"
)

const exitCodeError = 1

// UsageError is returned when no shape name is given.
type UsageError struct{}

func (UsageError) Error() string {
	return "Usage: " + shape.Program + " <object_name> [parameters...]"
}
func (UsageError) ExitCode() int { return exitCodeError }

// UnknownShapeError is returned when the name is not registered.
type UnknownShapeError struct{ Name string }

func (e UnknownShapeError) Error() string { return "Unknown object: " + e.Name }
func (e UnknownShapeError) ExitCode() int { return exitCodeError }

// ParameterParseError names the first token that is not a number.
type ParameterParseError struct{ Token string }

func (e ParameterParseError) Error() string { return "Invalid parameter: " + e.Token }
func (e ParameterParseError) ExitCode() int { return exitCodeError }

// InsufficientParameterError is returned when fewer numbers than required are given.
type InsufficientParameterError struct{ Expected, Got int }

func (e InsufficientParameterError) Error() string {
	return fmt.Sprintf("Error: Expected %d parameters, got %d", e.Expected, e.Got)
}
func (e InsufficientParameterError) ExitCode() int { return exitCodeError }

// ExtraParameterError is returned in strict mode when more numbers than
// required are given.
type ExtraParameterError struct{ Expected, Got int }

func (e ExtraParameterError) Error() string {
	return fmt.Sprintf("Error: Expected %d parameters, got %d (strict mode rejects extra parameters)", e.Expected, e.Got)
}
func (e ExtraParameterError) ExitCode() int { return exitCodeError }

// CalculationError wraps a failure reported by a shape.
type CalculationError struct {
	Name string
	Err  error
}

func (e CalculationError) Error() string { return "Calculation failed: " + e.Err.Error() }
func (e CalculationError) ExitCode() int { return exitCodeError }
func (e CalculationError) Unwrap() error { return e.Err }
