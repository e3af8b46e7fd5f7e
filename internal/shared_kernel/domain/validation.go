package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidationFailed     = errors.New("validation failed")
	ErrRequiredFieldMissing = errors.New("required field missing")
)

// FieldError describes a single rejected value. Cause is either
// ErrRequiredFieldMissing or ErrValidationFailed.
type FieldError struct {
	Field  string
	Reason string
	Cause  error
}

func Required(field string) FieldError {
	return FieldError{Field: field, Reason: "is required", Cause: ErrRequiredFieldMissing}
}

func Invalid(field, reason string) FieldError {
	return FieldError{Field: field, Reason: reason, Cause: ErrValidationFailed}
}

func (e FieldError) Error() string {
	return e.Field + " " + e.Reason
}

func (e FieldError) Unwrap() error {
	return e.Cause
}

// ValidationError aggregates every FieldError found while checking a write.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Add(errs ...FieldError) {
	e.Errors = append(e.Errors, errs...)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// OrNil returns nil when nothing was collected so callers never hand out a
// typed nil error.
func (e *ValidationError) OrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		errs[i] = fe
	}
	return errs
}

// FieldErrors extracts the aggregated field errors from err, if any.
func FieldErrors(err error) []FieldError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Errors
	}
	var ferr FieldError
	if errors.As(err, &ferr) {
		return []FieldError{ferr}
	}
	return nil
}
