package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// ChartDataset is one series of a chart.
type ChartDataset struct {
	Label string
	Data  []decimal.Decimal
}

// ChartDataOutput is the income/expense bar chart of a report.
type ChartDataOutput struct {
	Labels   []string
	Datasets []ChartDataset
}

// ChartDataUseCase shapes the financial report for charting.
type ChartDataUseCase struct {
	report *FinancialReportUseCase
}

// NewChartDataUseCase creates a new ChartDataUseCase instance.
func NewChartDataUseCase(transactionRepo adapter.TransactionRepository) *ChartDataUseCase {
	return &ChartDataUseCase{
		report: NewFinancialReportUseCase(transactionRepo),
	}
}

// Execute builds the chart.
func (uc *ChartDataUseCase) Execute(ctx context.Context, input FinancialReportInput) (*ChartDataOutput, error) {
	report, err := uc.report.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	return &ChartDataOutput{
		Labels: []string{"Income", "Expenses"},
		Datasets: []ChartDataset{
			{
				Label: "Amount",
				Data:  []decimal.Decimal{report.TotalIncome, report.TotalExpenses},
			},
		},
	}, nil
}
