package service

import (
	"errors"
	"fmt"
)

// Sentinel errors let callers handle specific business failures
// programmatically.
var (
	// ErrClientRequired fails invoice creation when no client is selected.
	ErrClientRequired = errors.New("client required")

	// ErrIncompleteItem fails invoice creation when a draft line item is
	// missing its description, quantity, or unit price.
	ErrIncompleteItem = errors.New("incomplete item")

	// ErrInvalidPayload covers remaining field-level validation failures.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrEmailTaken fails registration for an already-registered address.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError wraps a sentinel error with human-readable details.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err was raised before any write was attempted.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
