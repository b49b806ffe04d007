package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidTransition is returned on an illegal state machine move.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCycle is returned when an operation would introduce a cycle in
	// the agent hierarchy or a workflow graph.
	ErrCycle = errors.New("cycle detected")

	// ErrDepthExceeded is returned when a spawn would breach the
	// configured maximum hierarchy depth.
	ErrDepthExceeded = errors.New("hierarchy depth exceeded")

	// ErrInsufficientBudget is returned when a parent cannot cover a
	// child allocation.
	ErrInsufficientBudget = errors.New("insufficient budget")

	// ErrOverrun is returned when a consume would exceed the allocation.
	ErrOverrun = errors.New("budget overrun")

	// ErrConflict is returned on serialization or row-lock conflicts.
	ErrConflict = errors.New("concurrent modification conflict")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
