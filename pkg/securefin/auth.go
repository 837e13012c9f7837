package securefin

import (
	"context"

	internalTypes "github.com/AshutoshGit-15/SecureFin/internal/types"
	"github.com/pkg/errors"
)

const (
	loginPath    = "/auth/login/"
	registerPath = "/auth/register/"
	identityPath = "/users/me/"
)

// authService implements the AuthService interface. Login and register go
// through the same transport as every other call; with no credential in
// the session store the requests simply go out unauthenticated.
type authService struct {
	client *Client
}

// Login performs authentication
func (a *authService) Login(ctx context.Context, username, password string) (*User, error) {
	if username == "" {
		return nil, &ValidationError{Field: "username", Message: "username is required"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Message: "password is required"}
	}

	var resp authResponse
	err := a.client.transport.Post(ctx, loginPath, &Credentials{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, a.rejectAuth(err, "invalid username or password")
	}

	return a.establish(&resp)
}

// Register creates an account
func (a *authService) Register(ctx context.Context, params *RegisterParams) (*User, error) {
	if params == nil {
		return nil, &ValidationError{Field: "params", Message: "registration fields are required"}
	}
	if errs := validateRegistration(params); errs != nil {
		return nil, errs
	}

	var resp authResponse
	err := a.client.transport.Post(ctx, registerPath, params, &resp)
	if err != nil {
		return nil, a.rejectAuth(err, "registration failed")
	}

	return a.establish(&resp)
}

// Resume performs the startup transition out of Unknown. When the durable
// store holds a token the session enters Verifying and the token is checked
// against the backend; otherwise the session lands Unauthenticated without
// any network traffic.
func (a *authService) Resume(ctx context.Context) *User {
	if !a.client.session.restore() {
		return nil
	}
	return a.Verify(ctx)
}

// Verify checks the held token against the backend. Fail closed: an
// expired token, a network error, and a malformed response are all treated
// identically to "not logged in" — the durable token is cleared and nil is
// returned, never a distinct error.
func (a *authService) Verify(ctx context.Context) *User {
	var user User
	if err := a.client.transport.Get(ctx, identityPath, &user); err != nil {
		if logger := a.client.options.Logger; logger != nil {
			logger.Debug("verification failed", "error", err)
		}
		a.client.session.failVerify()
		return nil
	}

	a.client.session.verified(&user)
	return &user
}

// Logout clears the session. Idempotent.
func (a *authService) Logout() {
	a.client.session.Logout()
}

// establish applies a successful auth response to the session store. The
// prior state is only replaced once the response proves well formed.
func (a *authService) establish(resp *authResponse) (*User, error) {
	if resp.Access == "" {
		return nil, errors.New("no access token in auth response")
	}

	user := resp.User
	a.client.session.establish(internalTypes.Tokens{Access: resp.Access, Refresh: resp.Refresh}, &user)
	return &user, nil
}

// rejectAuth maps a backend rejection onto the inline-form error, leaving
// transport-level failures (network, 5xx) untouched.
func (a *authService) rejectAuth(err error, fallback string) error {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return newAuthError(apiErr.Message, fallback)
	}
	return err
}

func validateRegistration(params *RegisterParams) error {
	var errs []*ValidationError
	if params.Username == "" {
		errs = append(errs, &ValidationError{Field: "username", Message: "username is required"})
	}
	if params.Email == "" {
		errs = append(errs, &ValidationError{Field: "email", Message: "email is required"})
	}
	if params.Password == "" {
		errs = append(errs, &ValidationError{Field: "password", Message: "password is required"})
	}
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return &ValidationErrors{Errors: errs}
}
