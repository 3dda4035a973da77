package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CheckStatusInput represents the input for checking budget status.
type CheckStatusInput struct {
	UserID uuid.UUID
}

// CheckStatusOutput holds one alert per budget that is nearing or exceeded,
// plus the evaluated state of every budget.
type CheckStatusOutput struct {
	Alerts   []string
	Statuses []*BudgetOutput
}

// CheckStatusUseCase evaluates every budget of a user against the ledger.
type CheckStatusUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewCheckStatusUseCase creates a new CheckStatusUseCase instance.
func NewCheckStatusUseCase(budgetRepo adapter.BudgetRepository, transactionRepo adapter.TransactionRepository) *CheckStatusUseCase {
	return &CheckStatusUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the status check.
func (uc *CheckStatusUseCase) Execute(ctx context.Context, input CheckStatusInput) (*CheckStatusOutput, error) {
	owner := input.UserID
	budgets, err := uc.budgetRepo.FindByUserID(ctx, &owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	output := &CheckStatusOutput{
		Alerts:   []string{},
		Statuses: make([]*BudgetOutput, 0, len(budgets)),
	}

	for _, b := range budgets {
		status, err := evaluate(ctx, uc.transactionRepo, b)
		if err != nil {
			return nil, err
		}
		output.Statuses = append(output.Statuses, status)

		if alert := AlertFor(b.Scope(), status.Level); alert != "" {
			output.Alerts = append(output.Alerts, alert)
		}
	}

	return output, nil
}

// AlertFor returns the user-facing alert for a budget level, or an empty
// string when the budget is fine.
func AlertFor(scope string, level entity.BudgetLevel) string {
	switch level {
	case entity.BudgetLevelExceeded:
		return fmt.Sprintf("Budget exceeded for %s!", scope)
	case entity.BudgetLevelNearing:
		return fmt.Sprintf("You are nearing your budget for %s.", scope)
	default:
		return ""
	}
}
