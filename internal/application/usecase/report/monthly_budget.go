package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

var nearingLimitRatio = decimal.NewFromFloat(0.2)

// MonthlyBudgetInput represents the input for a monthly budget report.
type MonthlyBudgetInput struct {
	Scope  transaction.Scope
	Budget decimal.Decimal
	Month  int // 1..12
	Year   int
}

// MonthlyBudgetOutput compares one calendar month against an ad-hoc budget.
type MonthlyBudgetOutput struct {
	Period          string
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
	RemainingBudget decimal.Decimal
	BudgetExceeded  bool
	Recommendation  string
}

// MonthlyBudgetUseCase handles the monthly budget report.
type MonthlyBudgetUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewMonthlyBudgetUseCase creates a new MonthlyBudgetUseCase instance.
func NewMonthlyBudgetUseCase(transactionRepo adapter.TransactionRepository) *MonthlyBudgetUseCase {
	return &MonthlyBudgetUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the monthly budget report.
func (uc *MonthlyBudgetUseCase) Execute(ctx context.Context, input MonthlyBudgetInput) (*MonthlyBudgetOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidReportMonth,
		)
	}
	if input.Year < 1 || input.Year > 9999 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportYear,
			"year must be between 1 and 9999",
			domainerror.ErrInvalidReportYear,
		)
	}
	if input.Budget.IsNegative() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportBudget,
			"budget must not be negative",
			domainerror.ErrInvalidReportBudget,
		)
	}

	start, end := entity.MonthBounds(input.Year, time.Month(input.Month))
	rows, err := loadRows(ctx, uc.transactionRepo, Filter{
		Scope:     input.Scope,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	totals := entity.Summarize(rows)
	remaining := input.Budget.Sub(totals.Expense)

	return &MonthlyBudgetOutput{
		Period:          start.Format(entity.PeriodLayout),
		TotalIncome:     totals.Income,
		TotalExpenses:   totals.Expense,
		RemainingBudget: remaining,
		BudgetExceeded:  remaining.IsNegative(),
		Recommendation:  MonthlyRecommendation(input.Budget, remaining),
	}, nil
}

// MonthlyRecommendation returns the advice for what is left of a monthly budget.
func MonthlyRecommendation(budget, remaining decimal.Decimal) string {
	switch {
	case remaining.IsNegative():
		return fmt.Sprintf("Budget exceeded by %s. Consider reducing expenses in non-essential categories.", remaining.Abs().String())
	case remaining.LessThan(budget.Mul(nearingLimitRatio)):
		return fmt.Sprintf("You are nearing your budget limit. Remaining: %s", remaining.String())
	default:
		return "You are within budget!"
	}
}
