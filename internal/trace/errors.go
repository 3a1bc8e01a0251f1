package trace

import "errors"

// Domain errors for trace generation.
var (
	// ErrInvalidInput indicates a caller-level contract violation such as an
	// unknown algorithm or a payload that is not a list of integers.
	ErrInvalidInput = errors.New("trace: invalid input")

	// ErrEmptyTrace indicates an attempt to build a trace without steps.
	ErrEmptyTrace = errors.New("trace: no steps recorded")
)

// InvalidInputError wraps ErrInvalidInput with the offending detail.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.Reason
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// Invalid returns an *InvalidInputError for reason.
func Invalid(reason string) error {
	return &InvalidInputError{Reason: reason}
}
