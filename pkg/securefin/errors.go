package securefin

import (
	"errors"
	"fmt"

	internalTypes "github.com/AshutoshGit-15/SecureFin/internal/types"
)

// Error represents an API error with the backend status code attached.
type Error = internalTypes.Error

var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = internalTypes.ErrNotAuthenticated

	// ErrLoginFailed is returned when login or registration is rejected
	ErrLoginFailed = internalTypes.ErrLoginFailed

	// ErrSessionExpired is returned when an authenticated call fails with an
	// authorization-class error; the session store has already been cleared
	ErrSessionExpired = internalTypes.ErrSessionExpired

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = internalTypes.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = internalTypes.ErrTimeout

	// ErrNotFound is returned when resource not found
	ErrNotFound = internalTypes.ErrNotFound

	// ErrServerError is returned for server errors
	ErrServerError = internalTypes.ErrServerError

	// ErrFetchInProgress is returned when a view already has an outstanding
	// fetch for the same resource
	ErrFetchInProgress = errors.New("fetch already in progress")
)

// ValidationError represents a client-side validation failure. It blocks
// submission before any network call is made.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors struct {
	Errors []*ValidationError `json:"errors"`
}

// Error implements the error interface
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d validation errors occurred", len(e.Errors))
}

// NewError creates a new API error
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// newAuthError builds the inline-form error for a rejected login or
// registration, preferring the backend's message over the fallback.
func newAuthError(message, fallback string) *Error {
	if message == "" {
		message = fallback
	}
	return &Error{
		Code:    "AUTH_FAILED",
		Message: message,
		Err:     ErrLoginFailed,
	}
}

// IsAuthError checks if error is authentication related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrLoginFailed) ||
		errors.Is(err, ErrSessionExpired)
}

// IsValidationError checks if error is a client-side validation failure
func IsValidationError(err error) bool {
	var single *ValidationError
	var multi *ValidationErrors
	return errors.As(err, &single) || errors.As(err, &multi)
}
