package securefin

// PaymentMethod identifies how an expense was paid.
type PaymentMethod string

// Payment methods accepted by the backend
const (
	PaymentCash       PaymentMethod = "cash"
	PaymentUPI        PaymentMethod = "upi"
	PaymentCard       PaymentMethod = "card"
	PaymentNetBanking PaymentMethod = "net_banking"
	PaymentWallet     PaymentMethod = "wallet"
	PaymentBlockchain PaymentMethod = "blockchain"
)

// ExpenseStatus is the backend-computed status of an expense. The fraud
// pipeline may mark entries disputed; the client only displays the flag.
type ExpenseStatus string

// Known expense statuses
const (
	StatusNormal   ExpenseStatus = "normal"
	StatusDisputed ExpenseStatus = "disputed"
)

// User is the authenticated identity returned by the backend. Read-only
// from the client's perspective.
type User struct {
	ID            int    `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	MonthlyIncome Amount `json:"monthly_income"`
}

// Expense is a single spending record. The cached order of a fetched list
// is the API response order, which is not guaranteed chronological.
type Expense struct {
	ID               int           `json:"id"`
	Amount           Amount        `json:"amount"`
	Description      string        `json:"description"`
	Category         string        `json:"category"`
	CategoryIcon     string        `json:"category_icon"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	MerchantName     string        `json:"merchant_name"`
	Status           ExpenseStatus `json:"status"`
	TransactionDate  Date          `json:"transaction_date"`
	BlockchainTxHash string        `json:"blockchain_tx_hash"`
}

// OnBlockchain reports whether the expense carries a blockchain receipt.
func (e *Expense) OnBlockchain() bool {
	return e.BlockchainTxHash != ""
}

// ExpenseDraft is the client-side input for creating an expense. Server-
// computed fields (status, icon, transaction date) are never guessed; the
// created record is always re-fetched.
type ExpenseDraft struct {
	Amount        float64       `json:"amount"`
	Description   string        `json:"description"`
	Category      int           `json:"category"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	MerchantName  string        `json:"merchant_name,omitempty"`
}

// Category is read-only reference data.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DailySpend is one point of the seven-day spending trend.
type DailySpend struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// TopCategory is one slice of the category distribution.
type TopCategory struct {
	Name  string  `json:"category__name"`
	Total float64 `json:"total"`
}

// BudgetLine is the per-category budget-vs-actual record. Percentage and
// remaining are derived client-side, never trusted from a cached copy.
type BudgetLine struct {
	Category       string  `json:"category"`
	Spent          float64 `json:"spent"`
	Budgeted       float64 `json:"budgeted"`
	AlertThreshold float64 `json:"alert_threshold"`
}

// Alert is a backend-computed notification. Type is an opaque label; the
// client keys display severity off the string alone.
type Alert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// DashboardSnapshot is the full dashboard aggregate. It is recomputed
// wholesale on every fetch; there is no incremental update.
type DashboardSnapshot struct {
	MonthlyIncome   float64       `json:"monthly_income"`
	MonthlyExpenses float64       `json:"monthly_expenses"`
	Balance         float64       `json:"balance"`
	DailySpending   []DailySpend  `json:"daily_spending"`
	TopCategories   []TopCategory `json:"top_categories"`
	BudgetStatus    []BudgetLine  `json:"budget_status"`
	Alerts          []Alert       `json:"alerts"`
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterParams is the registration request body, a superset of login.
type RegisterParams struct {
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	PhoneNumber   string  `json:"phone_number"`
	MonthlyIncome float64 `json:"monthly_income"`
}

// authResponse is the flattened login/register response: token pair plus
// the user's own profile fields.
type authResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User
}
