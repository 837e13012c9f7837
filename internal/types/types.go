package types

import (
	"context"
	"net/http"
	"time"
)

// Tokens is the credential pair issued by the backend on login/register.
// The access token authorizes API calls; the refresh token is persisted
// alongside it but no refresh flow is attempted by this client.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// TokenSource supplies the current access token, or "" when unauthenticated.
type TokenSource interface {
	AccessToken() string
}

// RetryConfig configures retry behavior
type RetryConfig struct {
	MaxRetries int           `json:"maxRetries"`
	RetryWait  time.Duration `json:"retryWait"`
	MaxWait    time.Duration `json:"maxWait"`
}

// Hooks provides lifecycle hooks for requests
type Hooks struct {
	OnRequest  func(ctx context.Context, req *http.Request)
	OnResponse func(ctx context.Context, resp *http.Response, duration time.Duration)
	OnError    func(ctx context.Context, err error)
}
