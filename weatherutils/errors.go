package weatherutils

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a physical precondition of a formula is violated.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which quantity was rejected and why.
// It unwraps to ErrInvalidInput.
type InputError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %g: %s", ErrInvalidInput, e.Quantity, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(quantity string, value float64, reason string) error {
	return &InputError{Quantity: quantity, Value: value, Reason: reason}
}
