package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrExternalService is returned when an external service call fails.
	ErrExternalService = errors.New("external service error")
)

// invalidInput builds an ErrInvalidInput with a message.
func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// external wraps an embedding/generation/vector-store failure as
// ErrExternalService. Failures are never retried here; they propagate to
// the HTTP boundary.
func external(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrExternalService, op, err)
}
