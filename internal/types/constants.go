package types

import (
	"errors"
	"time"
)

const (
	// DefaultBaseURL is the default SecureFin API base URL
	DefaultBaseURL = "http://localhost:8000/api"

	// BaseURLEnvVar overrides the base URL when set
	BaseURLEnvVar = "SECUREFIN_API_URL"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "securefin-go/1.0.0"
)

// Common errors
var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrLoginFailed is returned when login or registration is rejected
	ErrLoginFailed = errors.New("login failed")

	// ErrSessionExpired is returned when the session has expired
	ErrSessionExpired = errors.New("session expired")

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on timeout
	ErrTimeout = errors.New("request timeout")

	// ErrNotFound is returned when resource not found
	ErrNotFound = errors.New("resource not found")

	// ErrServerError is returned for server errors
	ErrServerError = errors.New("server error")
)
