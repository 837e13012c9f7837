package securefin

// Route is the top-level view tree to mount.
type Route int

// Routes. Authorization is decided once here at the root, never per page.
const (
	// RouteLoading is shown while the startup verification is pending
	RouteLoading Route = iota

	// RouteLogin is the unauthenticated entry view
	RouteLogin

	// RouteApp is the authenticated tree (navigation plus routed pages)
	RouteApp
)

// String implements fmt.Stringer
func (r Route) String() string {
	switch r {
	case RouteLoading:
		return "loading"
	case RouteLogin:
		return "login"
	case RouteApp:
		return "app"
	default:
		return "invalid"
	}
}

// Router maps session state onto the view tree to mount.
type Router struct {
	session *SessionStore
}

// NewRouter creates a router over the given session store.
func NewRouter(session *SessionStore) *Router {
	return &Router{session: session}
}

// Route returns the tree for the current session state: the authenticated
// tree only when the session is Authenticated, the loading shell while the
// startup decision is pending, and the entry view otherwise.
func (r *Router) Route() Route {
	switch r.session.State() {
	case StateUnknown, StateVerifying:
		return RouteLoading
	case StateAuthenticated:
		return RouteApp
	default:
		return RouteLogin
	}
}
