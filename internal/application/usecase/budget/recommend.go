package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// RecommendInput represents the input for budget recommendations.
type RecommendInput struct {
	UserID uuid.UUID
}

// Recommendation is the advice produced for one budget.
type Recommendation struct {
	BudgetID uuid.UUID
	Scope    string
	Usage    entity.BudgetUsage
	Message  string
}

// RecommendOutput holds exactly one recommendation per budget.
type RecommendOutput struct {
	Recommendations []Recommendation
}

// Messages returns the recommendation texts in budget order.
func (o *RecommendOutput) Messages() []string {
	messages := make([]string, 0, len(o.Recommendations))
	for _, r := range o.Recommendations {
		messages = append(messages, r.Message)
	}
	return messages
}

// RecommendUseCase produces spending advice for each budget of a user.
type RecommendUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewRecommendUseCase creates a new RecommendUseCase instance.
func NewRecommendUseCase(budgetRepo adapter.BudgetRepository, transactionRepo adapter.TransactionRepository) *RecommendUseCase {
	return &RecommendUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the recommendation.
func (uc *RecommendUseCase) Execute(ctx context.Context, input RecommendInput) (*RecommendOutput, error) {
	owner := input.UserID
	budgets, err := uc.budgetRepo.FindByUserID(ctx, &owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	output := &RecommendOutput{Recommendations: make([]Recommendation, 0, len(budgets))}
	for _, b := range budgets {
		spent, err := spentFor(ctx, uc.transactionRepo, b)
		if err != nil {
			return nil, err
		}

		usage := b.UsageFor(spent)
		output.Recommendations = append(output.Recommendations, Recommendation{
			BudgetID: b.ID,
			Scope:    b.Scope(),
			Usage:    usage,
			Message:  RecommendationFor(b.Scope(), b.Amount, usage),
		})
	}

	return output, nil
}

// RecommendationFor returns the advice text for a usage tier.
func RecommendationFor(scope string, amount decimal.Decimal, usage entity.BudgetUsage) string {
	switch usage {
	case entity.BudgetUsageExceeded:
		return fmt.Sprintf("You have exceeded your budget (%s) for %s. Consider increasing your budget or reducing expenses.", amount.String(), scope)
	case entity.BudgetUsageOverHalf:
		return fmt.Sprintf("You have used more than 50%% of your budget (%s). Consider adjusting your budget or tracking expenses more carefully.", scope)
	default:
		return fmt.Sprintf("You have used less than 50%% of your budget for %s. You could potentially lower your budget or save more.", scope)
	}
}
