// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and mapped to appropriate HTTP status codes by handlers.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated principal doesn't have permission.
	ErrForbidden = errors.New("forbidden")

	// ErrConfiguration indicates invalid or missing startup configuration.
	// Errors wrapping this sentinel are fatal: the process must not serve requests.
	ErrConfiguration = errors.New("configuration error")
)

// FieldValidationError reports submitted fields that were rejected by an edit
// policy. The rejected field names are carried so callers can return them to
// the client without re-deriving the decision.
type FieldValidationError struct {
	// Fields contains the names of the rejected fields.
	Fields []string
}

// Error returns the rejected field names joined into a single message.
func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("fields not editable: %s", strings.Join(e.Fields, ", "))
}

// Unwrap makes FieldValidationError match ErrInvalidInput via errors.Is.
func (e *FieldValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewFieldValidationError creates a FieldValidationError for the given field names.
func NewFieldValidationError(fields ...string) error {
	return &FieldValidationError{Fields: fields}
}

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
