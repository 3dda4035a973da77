package report_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/report"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/testutil"
)

func record(t *testing.T, repo adapter.TransactionRepository, userID uuid.UUID, kind entity.TransactionType, amount int64, category string, date time.Time, tags ...string) {
	txn := entity.NewTransaction(userID, kind, decimal.NewFromInt(amount), category, date, valueobject.NewTags(tags), "")
	require.NoError(t, repo.Create(context.Background(), txn))
}

func TestMonthlyBudget(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewTransactionRepository(testutil.NewTestDB(t))
	userID := uuid.New()

	record(t, repo, userID, entity.TransactionTypeExpense, 300, "rent", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	record(t, repo, userID, entity.TransactionTypeExpense, 220, "food", time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC))
	record(t, repo, userID, entity.TransactionTypeIncome, 1000, "salary", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	record(t, repo, userID, entity.TransactionTypeExpense, 999, "food", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	record(t, repo, userID, entity.TransactionTypeExpense, 999, "food", time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC))

	uc := report.NewMonthlyBudgetUseCase(repo)
	out, err := uc.Execute(ctx, report.MonthlyBudgetInput{
		Scope:  transaction.Scope{UserID: userID},
		Budget: decimal.NewFromInt(500),
		Month:  3,
		Year:   2025,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03", out.Period)
	assert.True(t, out.TotalExpenses.Equal(decimal.NewFromInt(520)))
	assert.True(t, out.TotalIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, out.RemainingBudget.Equal(decimal.NewFromInt(-20)))
	assert.True(t, out.BudgetExceeded)
	assert.Equal(t, "Budget exceeded by 20. Consider reducing expenses in non-essential categories.", out.Recommendation)

	_, err = uc.Execute(ctx, report.MonthlyBudgetInput{Scope: transaction.Scope{UserID: userID}, Budget: decimal.NewFromInt(1), Month: 13, Year: 2025})
	assert.ErrorIs(t, err, domainerror.ErrInvalidReportMonth)
}

func TestMonthlyRecommendation(t *testing.T) {
	budget := decimal.NewFromInt(500)
	assert.Equal(t, "You are nearing your budget limit. Remaining: 99", report.MonthlyRecommendation(budget, decimal.NewFromInt(99)))
	assert.Equal(t, "You are within budget!", report.MonthlyRecommendation(budget, decimal.NewFromInt(100)))
	assert.Equal(t, "You are nearing your budget limit. Remaining: 0", report.MonthlyRecommendation(budget, decimal.Zero))
}

func TestFinancialReportAndChart(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewTransactionRepository(testutil.NewTestDB(t))
	userID := uuid.New()
	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	record(t, repo, userID, entity.TransactionTypeIncome, 900, "salary", day, "work")
	record(t, repo, userID, entity.TransactionTypeExpense, 100, "food", day, "home")
	record(t, repo, userID, entity.TransactionTypeExpense, 50, "food", day.AddDate(0, 1, 0))

	filter := report.Filter{Scope: transaction.Scope{UserID: userID}}
	out, err := report.NewFinancialReportUseCase(repo).Execute(ctx, report.FinancialReportInput{Filter: filter})
	require.NoError(t, err)
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(750)))
	assert.Len(t, out.Transactions, 3)

	category := "food"
	filtered, err := report.NewFinancialReportUseCase(repo).Execute(ctx, report.FinancialReportInput{
		Filter: report.Filter{Scope: transaction.Scope{UserID: userID}, Category: &category, Tags: []string{"home"}},
	})
	require.NoError(t, err)
	assert.True(t, filtered.TotalExpenses.Equal(decimal.NewFromInt(100)))

	chart, err := report.NewChartDataUseCase(repo).Execute(ctx, report.FinancialReportInput{Filter: filter})
	require.NoError(t, err)
	assert.Equal(t, []string{"Income", "Expenses"}, chart.Labels)
	require.Len(t, chart.Datasets, 1)
	assert.Equal(t, "Amount", chart.Datasets[0].Label)
	assert.True(t, chart.Datasets[0].Data[0].Equal(decimal.NewFromInt(900)))
	assert.True(t, chart.Datasets[0].Data[1].Equal(decimal.NewFromInt(150)))

	start := day.AddDate(0, 0, 1)
	end := day
	_, err = report.NewFinancialReportUseCase(repo).Execute(ctx, report.FinancialReportInput{
		Filter: report.Filter{Scope: transaction.Scope{UserID: userID}, StartDate: &start, EndDate: &end},
	})
	assert.ErrorIs(t, err, domainerror.ErrInvalidReportRange)
}

func TestDetailedReport(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewTransactionRepository(testutil.NewTestDB(t))
	userID := uuid.New()

	record(t, repo, userID, entity.TransactionTypeExpense, 10, "food", time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC))
	record(t, repo, userID, entity.TransactionTypeExpense, 15, "food", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))
	record(t, repo, userID, entity.TransactionTypeExpense, 5, "food", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))
	record(t, repo, userID, entity.TransactionTypeIncome, 70, "gift", time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC))

	out, err := report.NewDetailedReportUseCase(repo).Execute(ctx, report.Filter{Scope: transaction.Scope{UserID: userID}})
	require.NoError(t, err)

	require.Len(t, out.Trends.Trends, 2)
	assert.Equal(t, "2024-12", out.Trends.Trends[0].Period)
	assert.Equal(t, "2025-01", out.Trends.Trends[1].Period)
	assert.True(t, out.Trends.Trends[1].TotalSpent.Equal(decimal.NewFromInt(20)))
	assert.True(t, out.IncomeVsExpenses.Income.Equal(decimal.NewFromInt(70)))
	assert.True(t, out.IncomeVsExpenses.Expense.Equal(decimal.NewFromInt(30)))
}

func TestIncomeVsExpenses_EmptyDefaultsToZero(t *testing.T) {
	repo := persistence.NewTransactionRepository(testutil.NewTestDB(t))
	out, err := report.NewIncomeVsExpensesUseCase(repo).Execute(context.Background(), report.IncomeVsExpensesInput{
		Filter: report.Filter{Scope: transaction.Scope{UserID: uuid.New()}},
	})
	require.NoError(t, err)
	assert.True(t, out.Income.IsZero())
	assert.True(t, out.Expense.IsZero())
}

type lineWriter struct{}

func (lineWriter) ContentType() string   { return "text/plain" }
func (lineWriter) FileExtension() string { return "txt" }
func (lineWriter) Write(w io.Writer, rows []*entity.Transaction) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Category); err != nil {
			return err
		}
	}
	return nil
}

func TestExportReport(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewTransactionRepository(testutil.NewTestDB(t))
	userID := uuid.New()
	record(t, repo, userID, entity.TransactionTypeExpense, 10, "food", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	record(t, repo, userID, entity.TransactionTypeExpense, 10, "rent", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))

	uc := report.NewExportReportUseCase(repo, map[string]adapter.ReportWriter{"txt": lineWriter{}})

	out, err := uc.Execute(ctx, report.ExportReportInput{Filter: report.Filter{Scope: transaction.Scope{UserID: userID}}, Format: "TXT"})
	require.NoError(t, err)
	assert.Equal(t, "text/plain", out.ContentType)
	assert.Equal(t, "food\nrent\n", string(out.Content))
	assert.Contains(t, out.FileName, ".txt")

	_, err = uc.Execute(ctx, report.ExportReportInput{Format: "pdf"})
	assert.ErrorIs(t, err, domainerror.ErrUnsupportedExportFormat)
}
