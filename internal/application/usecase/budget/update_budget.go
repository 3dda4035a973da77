package budget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UpdateBudgetInput represents the input for budget update. Nil fields are kept.
type UpdateBudgetInput struct {
	BudgetID      uuid.UUID
	UserID        uuid.UUID
	IsAdmin       bool
	Category      *string
	ClearCategory bool // turn the budget into an overall one
	Amount        *decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	ClearEndDate  bool
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	b, err := findOwned(ctx, uc.budgetRepo, input.BudgetID, input.UserID, input.IsAdmin)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		trimmed := strings.TrimSpace(*input.Category)
		b.Category = &trimmed
	}
	if input.ClearCategory {
		b.Category = nil
	}
	if input.Amount != nil {
		b.Amount = *input.Amount
	}
	if input.StartDate != nil {
		b.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		b.EndDate = input.EndDate
	}
	if input.ClearEndDate {
		b.EndDate = nil
	}

	if err := validateBudget(b); err != nil {
		return nil, err
	}

	b.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: b}, nil
}
