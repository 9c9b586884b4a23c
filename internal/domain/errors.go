package domain

import (
	"errors"
	"strings"
)

// Sentinels shared by services and adapters. Transports map them to status
// codes; callers match with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidPosition: a move targets an index outside the destination.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrFeatureDenied: the license does not enable the feature.
	ErrFeatureDenied = errors.New("feature denied")
)

// FieldError is one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError groups field errors and matches ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

// Error lists every field as "field: message", separated by semicolons.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation: ")
	for i, fe := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
