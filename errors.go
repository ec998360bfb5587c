package estigo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFitted is returned when a prediction is requested from an
	// estimator that has not been trained.
	ErrNotFitted = errors.New("estimator is not fitted")
)

// ErrInvalidParam indicates a constructor parameter outside its allowed
// range. Construction does not complete when this is returned.
type ErrInvalidParam struct {
	Param      string
	Value      int
	Constraint string
}

func (e *ErrInvalidParam) Error() string {
	return fmt.Sprintf("invalid parameter %s: %d (%s)", e.Param, e.Value, e.Constraint)
}

// ErrDimensionMismatch indicates a sample/estimator dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrTooFewSamples indicates a dataset with fewer samples than the
// estimator requires (e.g. fewer samples than clusters during seeding).
type ErrTooFewSamples struct {
	Samples  int
	Required int
}

func (e *ErrTooFewSamples) Error() string {
	return fmt.Sprintf("too few samples: %d < %d required", e.Samples, e.Required)
}

// ErrNotNumeric indicates a dataset source value that cannot be parsed as
// a number. Row and Col are zero-based.
type ErrNotNumeric struct {
	Row   int
	Col   int
	Value string
}

func (e *ErrNotNumeric) Error() string {
	return fmt.Sprintf("non-numeric value %q at row %d, column %d", e.Value, e.Row, e.Col)
}
