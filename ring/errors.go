package ring

import (
	"errors"
)

var (
	// ErrInvalidInput is returned when an argument is structurally invalid:
	// a length that is not a power of two, mismatched buffer sizes,
	// zero or out-of-range parameters, or coefficients outside [0, Q).
	ErrInvalidInput = errors.New("invalid input")

	// ErrPreconditionViolation is returned when a parameter fails a mathematical
	// precondition: a composite modulus or a root of unity of the wrong order.
	ErrPreconditionViolation = errors.New("precondition violation")
)
