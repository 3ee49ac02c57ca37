package complexity

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when fewer observations than required are supplied.
	ErrInsufficientData = errors.New("complexity: insufficient data")
	// ErrInvalidObservation is returned when an observation holds NaN or ±Inf.
	ErrInvalidObservation = errors.New("complexity: invalid observation")
	// ErrUnsupportedDomain marks a model whose precondition does not hold.
	ErrUnsupportedDomain = errors.New("complexity: unsupported domain")
	// ErrDegenerateInput marks a model whose regression is numerically singular.
	ErrDegenerateInput = errors.New("complexity: degenerate input")
	// ErrNoApplicableModel is returned when every candidate was excluded.
	ErrNoApplicableModel = errors.New("complexity: no applicable model")
	// ErrUnknownComplexity is returned for an unrecognised notation or name.
	ErrUnknownComplexity = errors.New("complexity: unknown complexity")
	// ErrMissingParams is returned when a prediction lacks a required parameter.
	ErrMissingParams = errors.New("complexity: missing parameters")
)

// UnsupportedDomainError reports that a model's precondition failed.
type UnsupportedDomainError struct {
	Name   Name
	Reason string
}

func (e *UnsupportedDomainError) Error() string {
	return fmt.Sprintf("complexity: %s does not apply: %s", e.Name, e.Reason)
}

func (e *UnsupportedDomainError) Unwrap() error { return ErrUnsupportedDomain }

// DegenerateInputError reports a singular or non-finite regression.
type DegenerateInputError struct {
	Name Name
	Err  error
}

func (e *DegenerateInputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("complexity: %s fit is degenerate", e.Name)
	}

	return fmt.Sprintf("complexity: %s fit is degenerate: %v", e.Name, e.Err)
}

func (e *DegenerateInputError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDegenerateInput}
	}

	return []error{ErrDegenerateInput, e.Err}
}

// UnknownComplexityError reports a failed registry lookup.
type UnknownComplexityError struct {
	Notation string
}

func (e *UnknownComplexityError) Error() string {
	return fmt.Sprintf("complexity: unknown complexity %q", e.Notation)
}

func (e *UnknownComplexityError) Unwrap() error { return ErrUnknownComplexity }
