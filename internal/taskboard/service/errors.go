package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Keeping them identical avoids a user-enumeration oracle.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountExists reports a sign-up against an email already in use.
	ErrAccountExists = errors.New("account already exists")

	// ErrTaskNotFound covers both a task that doesn't exist and a task owned
	// by someone else; the two are indistinguishable to the caller.
	ErrTaskNotFound = errors.New("task not found")
)

// ValidationError reports the first violated field of an operation's input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
