package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrVersionConflict   = errors.New("version conflict")
	ErrActiveContract    = errors.New("conflicting active contract")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrArchived          = errors.New("entity archived")
	ErrTimeout           = errors.New("storage timeout")
	ErrStorageFatal      = errors.New("storage unavailable")
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

// TransitionError reports the specific rejected state-machine edge.
// It wraps ErrInvalidTransition so callers can match with errors.Is.
type TransitionError struct {
	EntityType EntityType
	From       string
	To         string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: transition %s -> %s is not allowed", e.EntityType, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
