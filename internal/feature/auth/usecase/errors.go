// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"
	"strings"
)

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Login returns this same value for an unknown email and for a wrong
	// password so callers cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// ValidationError reports one or more input validation failures detected
// before any mutation. Details lists every failed check, not just the first.
type ValidationError struct {
	Message string
	Details []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Details, "; ")
}
