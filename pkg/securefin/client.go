package securefin

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/AshutoshGit-15/SecureFin/internal/transport"
	internalTypes "github.com/AshutoshGit-15/SecureFin/internal/types"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the default SecureFin API base URL
	DefaultBaseURL = internalTypes.DefaultBaseURL

	// BaseURLEnvVar overrides the base URL when set in the environment
	BaseURLEnvVar = internalTypes.BaseURLEnvVar

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = internalTypes.DefaultTimeout

	// defaultCredentialsFile is the durable token location under $HOME
	defaultCredentialsFile = ".securefin/credentials.json"
)

// Logger interface for logging
type Logger = internalTypes.Logger

// RetryConfig configures opt-in retry behavior. The default is nil: a
// failed request requires explicit user re-action.
type RetryConfig = internalTypes.RetryConfig

// Hooks provides lifecycle hooks for requests
type Hooks = internalTypes.Hooks

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Client is the main SecureFin API client
type Client struct {
	// Service interfaces
	Auth       AuthService
	Expenses   ExpenseService
	Categories CategoryService
	Dashboard  DashboardService

	// Internal fields
	baseURL   string
	transport Transport
	session   *SessionStore
	options   *ClientOptions
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL overrides the default API base URL; the SECUREFIN_API_URL
	// environment variable takes effect when this is empty
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// CredentialsFile is the durable token location; defaults to
	// ~/.securefin/credentials.json
	CredentialsFile string

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior (nil disables retries)
	RetryConfig *RetryConfig

	// RateLimiter for rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// NewClient creates a new SecureFin client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = os.Getenv(BaseURLEnvVar)
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	if opts.CredentialsFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve home directory for credentials file")
		}
		opts.CredentialsFile = filepath.Join(home, defaultCredentialsFile)
	}

	// The session store is created first; the transport consults it for
	// the credential on every call
	session := newSessionStore(opts.CredentialsFile, opts.Logger)

	transportOpts := &transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		Headers:     map[string]string{"X-Device-Id": uuid.New().String()},
		Tokens:      session,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	}

	c := &Client{
		baseURL:   opts.BaseURL,
		transport: transport.NewRestTransport(transportOpts),
		session:   session,
		options:   opts,
	}

	// Initialize services
	c.initServices()

	return c, nil
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Auth = &authService{client: c}
	c.Expenses = &expenseService{client: c}
	c.Categories = &categoryService{client: c}
	c.Dashboard = &dashboardService{client: c}
}

// Session returns the session store.
func (c *Client) Session() *SessionStore {
	return c.session
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}

// get executes an authenticated single-resource fetch.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	return c.finish(ctx, "GET", path, c.transport.Get(ctx, path, result))
}

// getList executes an authenticated collection fetch.
func (c *Client) getList(ctx context.Context, path string, result interface{}) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	return c.finish(ctx, "GET", path, c.transport.GetList(ctx, path, result))
}

// post executes an authenticated command.
func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	return c.finish(ctx, "POST", path, c.transport.Post(ctx, path, body, result))
}

// delete executes an authenticated removal.
func (c *Client) delete(ctx context.Context, path string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	return c.finish(ctx, "DELETE", path, c.transport.Delete(ctx, path))
}

// wait applies rate limiting when configured.
func (c *Client) wait(ctx context.Context) error {
	if c.options.RateLimiter == nil {
		return nil
	}
	if err := c.options.RateLimiter.Wait(ctx); err != nil {
		c.capture(ctx, "rate_limiter", err)
		return errors.Wrap(err, "rate limiter")
	}
	return nil
}

// finish applies the session-expiry rule and error reporting to the result
// of an authenticated call. An authorization-class failure while the
// session is Authenticated means the token went stale: the store is
// cleared and the caller sees ErrSessionExpired, identical in effect to a
// logout.
func (c *Client) finish(ctx context.Context, method, path string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotAuthenticated) && c.session.State() == StateAuthenticated {
		c.session.invalidate()
		err = &Error{
			Code:    "SESSION_EXPIRED",
			Message: "session expired, please log in again",
			Err:     ErrSessionExpired,
		}
	}

	c.capture(ctx, method+" "+path, err)
	return err
}

// capture reports an error to Sentry when it is initialized.
func (c *Client) capture(ctx context.Context, operation string, err error) {
	report := func(hub *sentry.Hub) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("api.operation", operation)
			hub.CaptureException(err)
		})
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		report(hub)
		return
	}
	report(sentry.CurrentHub())
}
