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
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID    uuid.UUID
	Category  *string          // nil for an overall budget
	Amount    *decimal.Decimal // Required
	StartDate *time.Time       // Defaults to now
	EndDate   *time.Time
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Amount == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount is required",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	var category *string
	if input.Category != nil {
		trimmed := strings.TrimSpace(*input.Category)
		category = &trimmed
	}

	b := entity.NewBudget(input.UserID, category, *input.Amount, input.StartDate, input.EndDate)
	if err := validateBudget(b); err != nil {
		return nil, err
	}

	if err := uc.budgetRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: b}, nil
}
