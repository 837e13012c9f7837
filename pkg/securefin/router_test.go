package securefin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_MountsByState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access": "T1", "refresh": "R1", "username": "alice"}`))
	}))
	defer server.Close()

	client := newServerClient(t, server)
	router := NewRouter(client.Session())

	// No decision yet: show the loading shell, not the entry form
	assert.Equal(t, RouteLoading, router.Route())

	// No durable token: unauthenticated entry view
	client.Auth.Resume(context.Background())
	assert.Equal(t, RouteLogin, router.Route())

	// Authentication mounts the app tree, decided once at the root
	_, err := client.Auth.Login(context.Background(), "alice", "x")
	require.NoError(t, err)
	assert.Equal(t, RouteApp, router.Route())

	// Logout drops straight back to the entry view
	client.Auth.Logout()
	assert.Equal(t, RouteLogin, router.Route())
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "loading", RouteLoading.String())
	assert.Equal(t, "login", RouteLogin.String())
	assert.Equal(t, "app", RouteApp.String())
}
