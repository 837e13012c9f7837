// Package credentials persists the access/refresh token pair across process
// restarts. The file is the only durable client state; clearing it is how
// the session store enforces its fail-closed policy.
package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/AshutoshGit-15/SecureFin/internal/types"
	"github.com/pkg/errors"
)

// Store is a file-backed token store.
type Store struct {
	path string
}

// NewStore creates a store rooted at path. The file is created lazily on
// the first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the token pair with restrictive permissions.
func (s *Store) Save(tokens types.Tokens) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.Wrap(err, "failed to create credentials directory")
	}

	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal credentials")
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write credentials file")
	}

	return nil
}

// Load returns the stored token pair. A missing file yields ok=false
// rather than an error, since "never logged in" is a normal state.
func (s *Store) Load() (types.Tokens, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Tokens{}, false, nil
		}
		return types.Tokens{}, false, errors.Wrap(err, "failed to read credentials file")
	}

	var tokens types.Tokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return types.Tokens{}, false, errors.Wrap(err, "failed to unmarshal credentials")
	}

	if tokens.Access == "" {
		return types.Tokens{}, false, nil
	}

	return tokens, true, nil
}

// Clear removes the stored tokens. Clearing an absent file is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove credentials file")
	}
	return nil
}
