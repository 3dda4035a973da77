package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// GetBudgetInput represents the input for getting a budget.
type GetBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
	IsAdmin  bool
}

// GetBudgetUseCase loads a budget with its current spending.
type GetBudgetUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository, transactionRepo adapter.TransactionRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the lookup.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*BudgetOutput, error) {
	b, err := findOwned(ctx, uc.budgetRepo, input.BudgetID, input.UserID, input.IsAdmin)
	if err != nil {
		return nil, err
	}
	return evaluate(ctx, uc.transactionRepo, b)
}
