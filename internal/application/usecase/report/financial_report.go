package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// FinancialReportInput represents the input for a financial report.
type FinancialReportInput struct {
	Filter Filter
}

// FinancialReportOutput holds totals, balance and the rows they were computed from.
type FinancialReportOutput struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
	Transactions  []*transaction.TransactionOutput
	rows          []*entity.Transaction
}

// Rows returns the domain rows behind the report.
func (o *FinancialReportOutput) Rows() []*entity.Transaction {
	return o.rows
}

// FinancialReportUseCase computes the filtered ledger summary.
type FinancialReportUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewFinancialReportUseCase creates a new FinancialReportUseCase instance.
func NewFinancialReportUseCase(transactionRepo adapter.TransactionRepository) *FinancialReportUseCase {
	return &FinancialReportUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the report.
func (uc *FinancialReportUseCase) Execute(ctx context.Context, input FinancialReportInput) (*FinancialReportOutput, error) {
	rows, err := loadRows(ctx, uc.transactionRepo, input.Filter)
	if err != nil {
		return nil, err
	}

	totals := entity.Summarize(rows)
	return &FinancialReportOutput{
		TotalIncome:   totals.Income,
		TotalExpenses: totals.Expense,
		Balance:       totals.Balance(),
		Transactions:  transaction.ToTransactionOutputs(rows),
		rows:          rows,
	}, nil
}
