package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// DetailedReportOutput combines spending trends with the income/expense comparison.
type DetailedReportOutput struct {
	Trends           *SpendingTrendsOutput
	IncomeVsExpenses *IncomeVsExpensesOutput
}

// DetailedReportUseCase runs the sub-reports concurrently.
type DetailedReportUseCase struct {
	trends           *SpendingTrendsUseCase
	incomeVsExpenses *IncomeVsExpensesUseCase
}

// NewDetailedReportUseCase creates a new DetailedReportUseCase instance.
func NewDetailedReportUseCase(transactionRepo adapter.TransactionRepository) *DetailedReportUseCase {
	return &DetailedReportUseCase{
		trends:           NewSpendingTrendsUseCase(transactionRepo),
		incomeVsExpenses: NewIncomeVsExpensesUseCase(transactionRepo),
	}
}

// Execute performs both sub-reports and fails if either fails.
func (uc *DetailedReportUseCase) Execute(ctx context.Context, filter Filter) (*DetailedReportOutput, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}

	output := &DetailedReportOutput{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		trends, err := uc.trends.Execute(gctx, SpendingTrendsInput{Filter: filter})
		if err != nil {
			return err
		}
		output.Trends = trends
		return nil
	})

	g.Go(func() error {
		comparison, err := uc.incomeVsExpenses.Execute(gctx, IncomeVsExpensesInput{Filter: filter})
		if err != nil {
			return err
		}
		output.IncomeVsExpenses = comparison
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return output, nil
}
