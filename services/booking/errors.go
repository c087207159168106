package booking

import "fmt"

// ValidationError signals malformed input (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError signals that a referenced entity is missing (HTTP 404).
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError signals an overlapping active booking (HTTP 409).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthorizationError signals a role mismatch (HTTP 403).
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }
