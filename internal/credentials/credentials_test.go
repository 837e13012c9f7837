package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AshutoshGit-15/SecureFin/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	store := NewStore(path)

	// Load before any save reports no credentials
	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	// Save then load round-trips both tokens
	require.NoError(t, store.Save(types.Tokens{Access: "T1", Refresh: "R1"}))

	tokens, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "T1", tokens.Access)
	assert.Equal(t, "R1", tokens.Refresh)

	// File permissions are restrictive
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Clear removes the file; a second clear is a no-op
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	_, ok, err = store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_LoadRejectsEmptyAccessToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"access": "", "refresh": "R1"}`), 0600))

	_, ok, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.False(t, ok)
}
