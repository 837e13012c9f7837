package securefin

import (
	"sync"

	"github.com/AshutoshGit-15/SecureFin/internal/credentials"
	internalTypes "github.com/AshutoshGit-15/SecureFin/internal/types"
)

// SessionState is the session store's position in its lifecycle.
type SessionState int

// Session states. The machine is re-entrant for the life of the process;
// there are no terminal states.
const (
	// StateUnknown means no decision has been made yet
	StateUnknown SessionState = iota

	// StateVerifying means a durable token was found and is being verified
	StateVerifying

	// StateAuthenticated means the identity has been verified
	StateAuthenticated

	// StateUnauthenticated means there is no usable credential
	StateUnauthenticated
)

// String implements fmt.Stringer
func (s SessionState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateVerifying:
		return "verifying"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "invalid"
	}
}

// SessionStore owns the current credential and verified identity. It is the
// single authority for login/logout/verify transitions; the transport reads
// the access token through it on every call, so clearing the store
// immediately stops the credential from being attached.
//
// Invariant: a non-nil identity implies a non-empty credential. The reverse
// may briefly hold while a durable token is being verified.
type SessionStore struct {
	mu       sync.RWMutex
	state    SessionState
	tokens   internalTypes.Tokens
	identity *User
	durable  *credentials.Store
	logger   internalTypes.Logger
}

// newSessionStore creates a store in the Unknown state backed by the given
// durable credential file.
func newSessionStore(path string, logger internalTypes.Logger) *SessionStore {
	return &SessionStore{
		state:   StateUnknown,
		durable: credentials.NewStore(path),
		logger:  logger,
	}
}

// State returns the current session state.
func (s *SessionStore) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Identity returns the verified user, or nil when not authenticated.
func (s *SessionStore) Identity() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// AccessToken implements the transport's token source. It returns "" when
// no credential is held, which makes the call go out unauthenticated.
func (s *SessionStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Access
}

// restore performs the startup transition out of Unknown: Verifying when a
// durable token pair exists, Unauthenticated when none does. It reports
// whether a verification round-trip is now required.
func (s *SessionStore) restore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, ok, err := s.durable.Load()
	if err != nil || !ok {
		if err != nil && s.logger != nil {
			s.logger.Warn("failed to load stored credentials", "error", err)
		}
		s.state = StateUnauthenticated
		return false
	}

	s.tokens = tokens
	s.state = StateVerifying
	return true
}

// establish records a successful login, register, or verify: the token pair
// is persisted durably, the identity set, and the state moves to
// Authenticated.
func (s *SessionStore) establish(tokens internalTypes.Tokens, identity *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = tokens
	s.identity = identity
	s.state = StateAuthenticated

	if err := s.durable.Save(tokens); err != nil && s.logger != nil {
		s.logger.Warn("failed to persist credentials", "error", err)
	}

	if s.logger != nil && identity != nil {
		s.logger.Info("session established", "username", identity.Username)
	}
}

// verified records a successful startup verification of the already-held
// durable token.
func (s *SessionStore) verified(identity *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = identity
	s.state = StateAuthenticated
}

// failVerify applies the fail-closed policy: any verification failure,
// whatever its cause, clears the durable token and lands in the same
// unauthenticated state as "never logged in".
func (s *SessionStore) failVerify() {
	s.clear("verification failed")
}

// invalidate handles session expiry observed on a later API call.
func (s *SessionStore) invalidate() {
	s.clear("session expired")
}

// Logout synchronously clears the credential, the identity, and the durable
// store. Idempotent.
func (s *SessionStore) Logout() {
	s.clear("logged out")
}

func (s *SessionStore) clear(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = internalTypes.Tokens{}
	s.identity = nil
	s.state = StateUnauthenticated

	if err := s.durable.Clear(); err != nil && s.logger != nil {
		s.logger.Warn("failed to clear stored credentials", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("session cleared", "reason", reason)
	}
}
