package securefin

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

const expensesPath = "/expenses/"

// expenseService implements the ExpenseService interface
type expenseService struct {
	client *Client
}

// List retrieves all expenses. The returned order is whatever the backend
// returns; the list endpoint may or may not wrap results in a pagination
// envelope, which the transport normalizes away.
func (s *expenseService) List(ctx context.Context) ([]*Expense, error) {
	var expenses []*Expense
	if err := s.client.getList(ctx, expensesPath, &expenses); err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}
	return expenses, nil
}

// Create creates a new expense. Validation runs before any network call;
// the created record comes back with its server-computed fields (status,
// icon, transaction date) populated.
func (s *expenseService) Create(ctx context.Context, draft *ExpenseDraft) (*Expense, error) {
	if draft == nil {
		return nil, &ValidationError{Field: "draft", Message: "expense draft is required"}
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	var created Expense
	if err := s.client.post(ctx, expensesPath, draft, &created); err != nil {
		return nil, errors.Wrap(err, "failed to create expense")
	}
	return &created, nil
}

// Delete deletes an expense
func (s *expenseService) Delete(ctx context.Context, id int) error {
	if err := s.client.delete(ctx, fmt.Sprintf("%s%d/", expensesPath, id)); err != nil {
		return errors.Wrapf(err, "failed to delete expense %d", id)
	}
	return nil
}

func validateDraft(draft *ExpenseDraft) error {
	var errs []*ValidationError
	if draft.Amount <= 0 {
		errs = append(errs, &ValidationError{Field: "amount", Message: "amount must be positive", Value: draft.Amount})
	}
	if draft.Description == "" {
		errs = append(errs, &ValidationError{Field: "description", Message: "description is required"})
	}
	if draft.Category == 0 {
		errs = append(errs, &ValidationError{Field: "category", Message: "category is required"})
	}
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return &ValidationErrors{Errors: errs}
}
