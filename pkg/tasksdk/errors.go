package tasksdk

import (
	"fmt"
	"net/http"

	"github.com/boardsync/taskboard/pkg/httpx"
)

// API error codes.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeAccountExists      = "account_exists"
	ErrorCodeUnauthorized       = "unauthorized"
	ErrorCodeValidation         = "validation_error"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error body every endpoint returns. It implements the error
// interface so the server can write it and the client can return it.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Description is a human-readable description of the error.
	Description string `json:"error_description"`

	// Field names the first violated input field for validation errors.
	Field string `json:"field,omitempty"`
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.Description)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, httpx.ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
		Field:            e.Field,
	})
}

var (
	// ErrInvalidRequest is returned when the request body is malformed.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is returned for any failed sign-in, regardless of
	// whether the email or the password was wrong.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid email or password",
	}

	// ErrAccountExists is returned when signing up with an email already in use.
	ErrAccountExists = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeAccountExists,
		Description: "an account with this email already exists",
	}

	// ErrUnauthorized is returned when the session token is missing, expired,
	// or otherwise invalid.
	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "missing or invalid session token",
	}

	// ErrNotFound is returned when the requested resource does not exist or
	// belongs to another user.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "the requested resource was not found",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "an internal error occurred",
	}
)

// NewValidationError builds the 400 body for a failed input validation,
// naming the first violated field.
func NewValidationError(field, description string) *APIError {
	return &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidation,
		Description: description,
		Field:       field,
	}
}
