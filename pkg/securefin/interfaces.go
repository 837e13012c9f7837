package securefin

import (
	"context"
)

// Transport is the verb-scoped gateway to the backend. Every call attaches
// the current credential when the session store holds one; it does not
// retry, queue, or interpret status codes beyond the error mapping.
type Transport interface {
	// Get fetches a single resource
	Get(ctx context.Context, path string, result interface{}) error

	// GetList fetches a collection, normalizing bare arrays and
	// pagination envelopes into one shape
	GetList(ctx context.Context, path string, result interface{}) error

	// Post sends a JSON body and decodes the response
	Post(ctx context.Context, path string, body, result interface{}) error

	// Delete removes a resource
	Delete(ctx context.Context, path string) error
}

// AuthService owns the session lifecycle.
type AuthService interface {
	// Login submits credentials; on success the token pair is persisted
	// durably and the identity set. On failure the prior session state is
	// untouched and the returned error carries the backend's message.
	Login(ctx context.Context, username, password string) (*User, error)

	// Register creates an account; same contract as Login with a
	// superset of fields.
	Register(ctx context.Context, params *RegisterParams) (*User, error)

	// Resume performs the startup transition: when a durable token
	// exists it is verified against the backend; any failure clears it
	// and lands unauthenticated. Returns the identity, or nil when
	// unauthenticated.
	Resume(ctx context.Context) *User

	// Verify checks the currently held token against the backend. Fail
	// closed: any failure clears the durable token and returns nil.
	Verify(ctx context.Context) *User

	// Logout clears the credential, identity, and durable store.
	// Idempotent.
	Logout()
}

// ExpenseService handles expense operations.
type ExpenseService interface {
	// List retrieves all expenses in API response order
	List(ctx context.Context) ([]*Expense, error)

	// Create creates a new expense after client-side validation
	Create(ctx context.Context, draft *ExpenseDraft) (*Expense, error)

	// Delete deletes an expense
	Delete(ctx context.Context, id int) error
}

// CategoryService handles category reference data.
type CategoryService interface {
	// List retrieves all categories
	List(ctx context.Context) ([]*Category, error)
}

// DashboardService handles the dashboard aggregate.
type DashboardService interface {
	// Get retrieves a fresh snapshot; it is recomputed wholesale on
	// every call
	Get(ctx context.Context) (*DashboardSnapshot, error)
}
