// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// BudgetOutput represents a budget together with the expenses counted against it.
type BudgetOutput struct {
	Budget    *entity.Budget
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Level     entity.BudgetLevel
}

// spentFor sums the owner's expenses that fall inside the budget's category
// and date window. Unset bounds do not filter.
func spentFor(ctx context.Context, repo adapter.TransactionRepository, b *entity.Budget) (decimal.Decimal, error) {
	owner := b.UserID
	expense := entity.TransactionTypeExpense

	transactions, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    &owner,
		Category:  b.Category,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Type:      &expense,
	}, adapter.SortDateAsc)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load expenses for budget %s: %w", b.ID, err)
	}

	return entity.Summarize(transactions).Expense, nil
}

// evaluate builds the derived view of a budget.
func evaluate(ctx context.Context, repo adapter.TransactionRepository, b *entity.Budget) (*BudgetOutput, error) {
	spent, err := spentFor(ctx, repo, b)
	if err != nil {
		return nil, err
	}
	return &BudgetOutput{
		Budget:    b,
		Spent:     spent,
		Remaining: b.Amount.Sub(spent),
		Level:     b.LevelFor(spent),
	}, nil
}

// findOwned loads a budget and hides budgets owned by other users from non-admins.
func findOwned(ctx context.Context, repo adapter.BudgetRepository, budgetID, userID uuid.UUID, isAdmin bool) (*entity.Budget, error) {
	b, err := repo.FindByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, budgetNotFound()
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if b.UserID != userID && !isAdmin {
		return nil, budgetNotFound()
	}

	return b, nil
}

func budgetNotFound() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}

func validateBudget(b *entity.Budget) error {
	if !b.Amount.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	if !entity.FitsCents(b.Amount) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must have at most two decimal places",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	if b.Category != nil && *b.Category == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			"category must not be blank",
			domainerror.ErrInvalidBudgetCategory,
		)
	}
	if b.StartDate != nil && b.EndDate != nil && b.StartDate.After(*b.EndDate) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"start date must not be after end date",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}
