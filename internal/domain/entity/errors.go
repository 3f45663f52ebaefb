package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a referenced entity does not exist
	ErrNotFound = errors.New("entity not found")

	// ErrConflict indicates that a uniqueness constraint would be violated
	ErrConflict = errors.New("entity already exists")

	// ErrValidation indicates that an input or referential precondition failed
	ErrValidation = errors.New("validation failed")

	// ErrInvariantViolation indicates that the store was observed in an inconsistent
	// state. It signals a defect and is never returned as a normal error.
	ErrInvariantViolation = errors.New("store invariant violated")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrValidation) match field errors.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
