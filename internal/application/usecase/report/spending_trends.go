package report

import (
	"context"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// SpendingTrendsInput represents the input for spending trends.
type SpendingTrendsInput struct {
	Filter Filter
}

// SpendingTrendsOutput holds expense totals per calendar month, oldest first.
type SpendingTrendsOutput struct {
	Trends []entity.MonthlySpending
}

// SpendingTrendsUseCase groups expenses by month.
type SpendingTrendsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSpendingTrendsUseCase creates a new SpendingTrendsUseCase instance.
func NewSpendingTrendsUseCase(transactionRepo adapter.TransactionRepository) *SpendingTrendsUseCase {
	return &SpendingTrendsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the trend computation.
func (uc *SpendingTrendsUseCase) Execute(ctx context.Context, input SpendingTrendsInput) (*SpendingTrendsOutput, error) {
	rows, err := loadRows(ctx, uc.transactionRepo, input.Filter)
	if err != nil {
		return nil, err
	}
	return &SpendingTrendsOutput{Trends: entity.SpendingByMonth(rows)}, nil
}
