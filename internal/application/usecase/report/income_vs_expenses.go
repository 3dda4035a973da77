package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// IncomeVsExpensesInput represents the input for the income/expense comparison.
type IncomeVsExpensesInput struct {
	Filter Filter
}

// IncomeVsExpensesOutput holds both sums, zero when there are no rows.
type IncomeVsExpensesOutput struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// IncomeVsExpensesUseCase compares income against expenses.
type IncomeVsExpensesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewIncomeVsExpensesUseCase creates a new IncomeVsExpensesUseCase instance.
func NewIncomeVsExpensesUseCase(transactionRepo adapter.TransactionRepository) *IncomeVsExpensesUseCase {
	return &IncomeVsExpensesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the comparison.
func (uc *IncomeVsExpensesUseCase) Execute(ctx context.Context, input IncomeVsExpensesInput) (*IncomeVsExpensesOutput, error) {
	rows, err := loadRows(ctx, uc.transactionRepo, input.Filter)
	if err != nil {
		return nil, err
	}

	totals := entity.Summarize(rows)
	return &IncomeVsExpensesOutput{
		Income:  totals.Income,
		Expense: totals.Expense,
	}, nil
}
