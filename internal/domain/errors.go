package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrOracleFailure = errors.New("oracle failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// OracleError reports that an external judgment service could not produce a usable
// result for a concept. It unwraps to both ErrOracleFailure and the underlying cause.
type OracleError struct {
	ConceptID int64
	Reason    string
	Err       error
}

func (e *OracleError) Error() string {
	msg := fmt.Sprintf("oracle: concept %d: %s", e.ConceptID, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OracleError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrOracleFailure}
	}
	return []error{ErrOracleFailure, e.Err}
}

// NewOracleError creates an OracleError for the given concept.
func NewOracleError(conceptID int64, reason string, cause error) *OracleError {
	return &OracleError{ConceptID: conceptID, Reason: reason, Err: cause}
}
