package apperrors

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrExternal indicates a failure reported by the Appwrite backend.
// Operations that hit it are surfaced once to the caller and abandoned;
// there is no automatic retry.
var ErrExternal = errors.New("backend request failed")

// ValidationError carries the full list of user-facing validation messages
// for a rejected submission. It unwraps to ErrValidation so callers can
// branch with errors.Is without knowing the concrete type.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError wraps a non-empty message list.
func NewValidationError(messages []string) error {
	return &ValidationError{Messages: messages}
}
