package securefin

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ExpenseFilter names a client-side partition of the cached expense list.
type ExpenseFilter string

// Named filters. Filtering is pure and never triggers a re-fetch.
const (
	FilterAll        ExpenseFilter = "all"
	FilterDisputed   ExpenseFilter = "disputed"
	FilterBlockchain ExpenseFilter = "blockchain"
)

func (f ExpenseFilter) matches(e *Expense) bool {
	switch f {
	case FilterDisputed:
		return e.Status == StatusDisputed
	case FilterBlockchain:
		return e.PaymentMethod == PaymentBlockchain
	default:
		return true
	}
}

// viewGuard tracks a view's fetch lifecycle: it rejects overlapping fetches
// from the same mounted instance and discards results that resolve after
// unmount or after a newer load superseded them.
type viewGuard struct {
	loading   bool
	gen       int
	unmounted bool
}

// begin reserves a fetch slot, returning the generation to settle with.
func (g *viewGuard) begin() (int, error) {
	if g.unmounted {
		return 0, nil
	}
	if g.loading {
		return 0, ErrFetchInProgress
	}
	g.loading = true
	g.gen++
	return g.gen, nil
}

// settle releases the slot and reports whether the result is still current.
func (g *viewGuard) settle(gen int) bool {
	if gen == g.gen {
		g.loading = false
	}
	return !g.unmounted && gen == g.gen
}

// ExpenseView is the fetch-list-filter-mutate controller for expenses. It
// exclusively owns its cached list; the list is always re-derived from a
// fresh fetch after a mutation, never patched optimistically.
type ExpenseView struct {
	client *Client

	mu         sync.Mutex
	guard      viewGuard
	expenses   []*Expense
	categories []*Category
	filter     ExpenseFilter
	lastErr    error
}

// NewExpenseView creates an unloaded view showing all expenses.
func NewExpenseView(client *Client) *ExpenseView {
	return &ExpenseView{
		client: client,
		filter: FilterAll,
	}
}

// Load fetches the expense list and the category reference data, once per
// mount. A second Load while one is outstanding returns
// ErrFetchInProgress. A read failure degrades the view to an empty display
// state and is also returned.
func (v *ExpenseView) Load(ctx context.Context) error {
	v.mu.Lock()
	gen, err := v.guard.begin()
	v.mu.Unlock()
	if err != nil || gen == 0 {
		return err
	}

	// The expense list and the category reference data load together, as
	// one mount. A category failure is non-fatal; the form just has no
	// options to offer.
	var expenses []*Expense
	var categories []*Category
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = v.client.Expenses.List(gctx)
		return err
	})
	g.Go(func() error {
		cats, err := v.client.Categories.List(gctx)
		if err != nil {
			v.logReadFailure("failed to fetch categories", err)
			return nil
		}
		categories = cats
		return nil
	})
	listErr := g.Wait()

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.guard.settle(gen) {
		return nil
	}

	if listErr != nil {
		v.expenses = nil
		v.lastErr = listErr
		v.logReadFailure("failed to fetch expenses", listErr)
		return listErr
	}

	v.expenses = expenses
	if categories != nil {
		v.categories = categories
	}
	v.lastErr = nil
	return nil
}

// Add validates and creates the draft, then invalidates and reloads the
// list so server-computed fields are never guessed. A write failure is
// surfaced to the caller and leaves the cached list untouched.
func (v *ExpenseView) Add(ctx context.Context, draft *ExpenseDraft) error {
	if _, err := v.client.Expenses.Create(ctx, draft); err != nil {
		return err
	}
	return v.reload(ctx)
}

// Delete removes an expense after the confirmation gate. When confirm
// returns false no network call is issued and the list is unchanged. On
// failure the item remains in the list and the error is both logged and
// returned; it does not block further interaction.
func (v *ExpenseView) Delete(ctx context.Context, id int, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}

	if err := v.client.Expenses.Delete(ctx, id); err != nil {
		v.mu.Lock()
		v.logReadFailure("failed to delete expense", err)
		v.mu.Unlock()
		return err
	}

	return v.reload(ctx)
}

// reload re-fetches the expense list after a successful mutation, using a
// fresh request rather than reconciling with any in-flight state.
func (v *ExpenseView) reload(ctx context.Context) error {
	v.mu.Lock()
	gen, err := v.guard.begin()
	v.mu.Unlock()
	if err != nil || gen == 0 {
		return err
	}

	expenses, listErr := v.client.Expenses.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.guard.settle(gen) {
		return nil
	}

	if listErr != nil {
		v.lastErr = listErr
		v.logReadFailure("failed to refresh expenses", listErr)
		return listErr
	}

	v.expenses = expenses
	v.lastErr = nil
	return nil
}

// SetFilter switches the active partition without re-fetching.
func (v *ExpenseView) SetFilter(filter ExpenseFilter) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = filter
}

// Filter returns the active partition.
func (v *ExpenseView) Filter() ExpenseFilter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// Visible returns the cached expenses matching the active filter,
// preserving their original relative order.
func (v *ExpenseView) Visible() []*Expense {
	v.mu.Lock()
	defer v.mu.Unlock()

	visible := make([]*Expense, 0, len(v.expenses))
	for _, e := range v.expenses {
		if v.filter.matches(e) {
			visible = append(visible, e)
		}
	}
	return visible
}

// Counts returns the tab counts for every named filter.
func (v *ExpenseView) Counts() map[ExpenseFilter]int {
	v.mu.Lock()
	defer v.mu.Unlock()

	counts := map[ExpenseFilter]int{
		FilterAll:        len(v.expenses),
		FilterDisputed:   0,
		FilterBlockchain: 0,
	}
	for _, e := range v.expenses {
		if e.Status == StatusDisputed {
			counts[FilterDisputed]++
		}
		if e.PaymentMethod == PaymentBlockchain {
			counts[FilterBlockchain]++
		}
	}
	return counts
}

// Categories returns the cached category reference data.
func (v *ExpenseView) Categories() []*Category {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.categories
}

// Err returns the read failure the view degraded with, if any.
func (v *ExpenseView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

// Unmount marks the view dead; any fetch still in flight discards its
// result instead of mutating state after unmount.
func (v *ExpenseView) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.guard.unmounted = true
}

func (v *ExpenseView) logReadFailure(msg string, err error) {
	if logger := v.client.options.Logger; logger != nil {
		logger.Error(msg, "error", err)
	}
}

// DashboardView owns the dashboard snapshot for one mount. Read failures
// degrade to an error display state; they never take the view tree down.
type DashboardView struct {
	client *Client

	mu       sync.Mutex
	guard    viewGuard
	snapshot *DashboardSnapshot
	lastErr  error
}

// NewDashboardView creates an unloaded dashboard view.
func NewDashboardView(client *Client) *DashboardView {
	return &DashboardView{client: client}
}

// Load fetches a fresh snapshot, with the same overlap and stale-update
// guards as the expense view.
func (v *DashboardView) Load(ctx context.Context) error {
	v.mu.Lock()
	gen, err := v.guard.begin()
	v.mu.Unlock()
	if err != nil || gen == 0 {
		return err
	}

	snapshot, fetchErr := v.client.Dashboard.Get(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.guard.settle(gen) {
		return nil
	}

	if fetchErr != nil {
		v.snapshot = nil
		v.lastErr = fetchErr
		if logger := v.client.options.Logger; logger != nil {
			logger.Error("failed to fetch dashboard", "error", fetchErr)
		}
		return fetchErr
	}

	v.snapshot = snapshot
	v.lastErr = nil
	return nil
}

// Snapshot returns the loaded aggregate, or nil before the first
// successful load.
func (v *DashboardView) Snapshot() *DashboardSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot
}

// Err returns the read failure the view degraded with, if any.
func (v *DashboardView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

// Unmount marks the view dead.
func (v *DashboardView) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.guard.unmounted = true
}
