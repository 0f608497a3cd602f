package auv

import (
	"errors"
	"fmt"
)

// ErrInvalidPhysicalInput is returned whenever an input falls outside of its physical domain.
// All the computations check their inputs before doing any arithmetic.
var ErrInvalidPhysicalInput = errors.New("invalid physical input")

// InputError describes which parameter was rejected and why.
type InputError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidPhysicalInput, e.Param, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidPhysicalInput).
func (e *InputError) Unwrap() error {
	return ErrInvalidPhysicalInput
}

func invalid(param string, value float64, reason string) error {
	return &InputError{param, value, reason}
}
