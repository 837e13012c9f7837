package securefin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServerClient builds a client over a real transport pointed at server,
// with its credentials file in a temp dir.
func newServerClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	client, err := NewClient(&ClientOptions{
		BaseURL:         server.URL,
		CredentialsFile: filepath.Join(t.TempDir(), "credentials.json"),
	})
	require.NoError(t, err)
	return client
}

func TestAuthService_Login_EstablishesSession(t *testing.T) {
	var authHeaders []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login/":
			var creds Credentials
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "alice", creds.Username)
			assert.Equal(t, "x", creds.Password)
			_, _ = w.Write([]byte(`{"access": "T1", "refresh": "R1", "username": "alice"}`))
		case "/users/me/":
			authHeaders = append(authHeaders, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"username": "alice"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newServerClient(t, server)

	user, err := client.Auth.Login(context.Background(), "alice", "x")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	// Session store is Authenticated with the identity set
	assert.Equal(t, StateAuthenticated, client.Session().State())
	require.NotNil(t, client.Session().Identity())
	assert.Equal(t, "alice", client.Session().Identity().Username)

	// Durable storage holds both tokens
	data, err := os.ReadFile(client.options.CredentialsFile)
	require.NoError(t, err)
	var stored struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, "T1", stored.Access)
	assert.Equal(t, "R1", stored.Refresh)

	// Subsequent API calls attach the bearer header
	var me User
	require.NoError(t, client.get(context.Background(), "/users/me/", &me))
	require.Len(t, authHeaders, 1)
	assert.Equal(t, "Bearer T1", authHeaders[0])
}

func TestAuthService_Login_RejectionKeepsPriorState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Invalid credentials"}`))
	}))
	defer server.Close()

	client := newServerClient(t, server)

	user, err := client.Auth.Login(context.Background(), "alice", "wrong")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, IsAuthError(err))
	// The backend's message rides along for the entry form
	assert.Contains(t, err.Error(), "Invalid credentials")

	// Prior state untouched: still no decision, no identity, no file
	assert.Equal(t, StateUnknown, client.Session().State())
	assert.Nil(t, client.Session().Identity())
	_, statErr := os.Stat(client.options.CredentialsFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAuthService_Login_FallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newServerClient(t, server)

	_, err := client.Auth.Login(context.Background(), "alice", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid username or password")
}

func TestAuthService_Login_ValidatesBeforeNetwork(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := newServerClient(t, server)

	_, err := client.Auth.Login(context.Background(), "alice", "")

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Zero(t, calls, "validation failures must not reach the network")
}

func TestAuthService_Register_EstablishesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register/", r.URL.Path)

		var params RegisterParams
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "bob", params.Username)
		assert.Equal(t, "bob@example.com", params.Email)
		assert.Equal(t, "+91 9876543210", params.PhoneNumber)
		assert.Equal(t, 50000.0, params.MonthlyIncome)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access": "T2", "refresh": "R2", "username": "bob", "monthly_income": "50000.00"}`))
	}))
	defer server.Close()

	client := newServerClient(t, server)

	user, err := client.Auth.Register(context.Background(), &RegisterParams{
		Username:      "bob",
		Email:         "bob@example.com",
		Password:      "secret",
		PhoneNumber:   "+91 9876543210",
		MonthlyIncome: 50000,
	})

	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, 50000.0, user.MonthlyIncome.Float64())
	assert.Equal(t, StateAuthenticated, client.Session().State())
}

func TestAuthService_Register_CollectsAllMissingFields(t *testing.T) {
	client := newTestClient(t, new(MockTransport))

	_, err := client.Auth.Register(context.Background(), &RegisterParams{})

	require.Error(t, err)
	var errs *ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs.Errors, 3)
}

func TestAuthService_Resume_NoStoredToken(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := newServerClient(t, server)

	user := client.Auth.Resume(context.Background())

	assert.Nil(t, user)
	assert.Equal(t, StateUnauthenticated, client.Session().State())
	assert.Zero(t, calls, "no stored token means no verification round-trip")
}

func TestAuthService_Resume_VerifiesStoredToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me/", r.URL.Path)
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username": "alice", "monthly_income": 50000}`))
	}))
	defer server.Close()

	credsFile := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(credsFile, []byte(`{"access": "T1", "refresh": "R1"}`), 0600))

	client, err := NewClient(&ClientOptions{BaseURL: server.URL, CredentialsFile: credsFile})
	require.NoError(t, err)

	user := client.Auth.Resume(context.Background())

	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, StateAuthenticated, client.Session().State())
}
