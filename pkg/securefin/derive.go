package securefin

import "fmt"

// categoryPalette is the fixed chart palette. Color assignment is a cyclic
// lookup by position so a given category ordering renders stably.
var categoryPalette = []string{
	"#32B0C6",
	"#E67E22",
	"#E74C3C",
	"#2ECC71",
	"#9B59B6",
	"#3498DB",
}

// CategoryColor returns the palette color for the category at index i.
func CategoryColor(i int) string {
	if i < 0 {
		i = -i
	}
	return categoryPalette[i%len(categoryPalette)]
}

// SavingsRate returns balance/income as a percentage. ok is false when the
// monthly income is zero, in which case the rate is undefined and callers
// must render the sentinel instead of a number.
func (d *DashboardSnapshot) SavingsRate() (rate float64, ok bool) {
	if d.MonthlyIncome == 0 {
		return 0, false
	}
	return d.Balance / d.MonthlyIncome * 100, true
}

// SavingsRateDisplay renders the savings rate to one decimal place, or the
// "N/A" sentinel when it is undefined. Never NaN or Inf.
func (d *DashboardSnapshot) SavingsRateDisplay() string {
	rate, ok := d.SavingsRate()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", rate)
}

// BalanceTone classifies the balance card as positive or negative.
func (d *DashboardSnapshot) BalanceTone() string {
	if d.Balance >= 0 {
		return "positive"
	}
	return "negative"
}

// BudgetStatuses derives the display state for every budget line.
func (d *DashboardSnapshot) BudgetStatuses() []BudgetStatus {
	statuses := make([]BudgetStatus, len(d.BudgetStatus))
	for i, line := range d.BudgetStatus {
		statuses[i] = DeriveBudget(line)
	}
	return statuses
}

// BudgetStatus is the display-ready form of a budget line.
//
// Over and Warning are independent flags, not mutually exclusive states: a
// line past 100% of a category whose threshold is below 100 carries both.
type BudgetStatus struct {
	BudgetLine

	// Percentage is spent/budgeted*100, zero when nothing is budgeted
	Percentage float64

	// Remaining is budgeted-spent; negative when overspent
	Remaining float64

	// ProgressPercent is the bar width, clamped to [0, 100]
	ProgressPercent float64

	// Over is set when spending exceeds the budget
	Over bool

	// Warning is set when the per-category alert threshold is crossed
	Warning bool
}

// DeriveBudget computes the display state for one budget line. Pure; the
// derived fields are never trusted from a cached copy.
func DeriveBudget(line BudgetLine) BudgetStatus {
	status := BudgetStatus{BudgetLine: line}

	if line.Budgeted != 0 {
		status.Percentage = line.Spent / line.Budgeted * 100
	}
	status.Remaining = line.Budgeted - line.Spent

	status.ProgressPercent = status.Percentage
	if status.ProgressPercent > 100 {
		status.ProgressPercent = 100
	}
	if status.ProgressPercent < 0 {
		status.ProgressPercent = 0
	}

	status.Over = status.Percentage > 100
	status.Warning = status.Percentage > line.AlertThreshold

	return status
}

// RemainingText renders the remaining amount with an explicit sign flip:
// what is left while under budget, the overshoot once past it.
func (b BudgetStatus) RemainingText() string {
	if b.Remaining >= 0 {
		return fmt.Sprintf("%s left", FormatINR(b.Remaining))
	}
	return fmt.Sprintf("Over by %s", FormatINR(-b.Remaining))
}

// UsedText renders the percentage used to one decimal place.
func (b BudgetStatus) UsedText() string {
	return fmt.Sprintf("%.1f%% used", b.Percentage)
}

// Class returns the CSS-style severity class for an alert. The type string
// is an opaque backend label; no further classification happens here.
func (a Alert) Class() string {
	return "alert-" + a.Type
}
