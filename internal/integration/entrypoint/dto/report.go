package dto

import (
	"github.com/finance-tracker/ledger/internal/application/usecase/report"
)

// FinancialReportResponse represents the filtered ledger summary.
type FinancialReportResponse struct {
	TotalIncome   string                `json:"total_income"`
	TotalExpenses string                `json:"total_expenses"`
	Balance       string                `json:"balance"`
	Transactions  []TransactionResponse `json:"transactions"`
}

// ChartDatasetResponse is one chart series.
type ChartDatasetResponse struct {
	Label string   `json:"label"`
	Data  []string `json:"data"`
}

// ChartDataResponse is the income/expense chart.
type ChartDataResponse struct {
	Labels   []string               `json:"labels"`
	Datasets []ChartDatasetResponse `json:"datasets"`
}

// MonthlyBudgetResponse represents the monthly budget comparison.
type MonthlyBudgetResponse struct {
	Period          string `json:"period"`
	TotalIncome     string `json:"total_income"`
	TotalExpenses   string `json:"total_expenses"`
	RemainingBudget string `json:"remaining_budget"`
	BudgetExceeded  bool   `json:"budget_exceeded"`
	Recommendation  string `json:"recommendation"`
}

// SpendingTrendResponse is the expense total of one month.
type SpendingTrendResponse struct {
	Period     string `json:"period"`
	TotalSpent string `json:"total_spent"`
}

// IncomeVsExpensesResponse compares income and expense totals.
type IncomeVsExpensesResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// DetailedReportResponse combines trends and the income/expense comparison.
type DetailedReportResponse struct {
	SpendingTrends   []SpendingTrendResponse  `json:"spending_trends"`
	IncomeVsExpenses IncomeVsExpensesResponse `json:"income_vs_expenses"`
}

// ToFinancialReportResponse converts a FinancialReportOutput.
func ToFinancialReportResponse(output *report.FinancialReportOutput) FinancialReportResponse {
	return FinancialReportResponse{
		TotalIncome:   output.TotalIncome.StringFixed(2),
		TotalExpenses: output.TotalExpenses.StringFixed(2),
		Balance:       output.Balance.StringFixed(2),
		Transactions:  ToTransactionResponses(output.Transactions),
	}
}

// ToChartDataResponse converts a ChartDataOutput.
func ToChartDataResponse(output *report.ChartDataOutput) ChartDataResponse {
	datasets := make([]ChartDatasetResponse, len(output.Datasets))
	for i, ds := range output.Datasets {
		data := make([]string, len(ds.Data))
		for j, d := range ds.Data {
			data[j] = d.StringFixed(2)
		}
		datasets[i] = ChartDatasetResponse{Label: ds.Label, Data: data}
	}
	return ChartDataResponse{Labels: output.Labels, Datasets: datasets}
}

// ToMonthlyBudgetResponse converts a MonthlyBudgetOutput.
func ToMonthlyBudgetResponse(output *report.MonthlyBudgetOutput) MonthlyBudgetResponse {
	return MonthlyBudgetResponse{
		Period:          output.Period,
		TotalIncome:     output.TotalIncome.StringFixed(2),
		TotalExpenses:   output.TotalExpenses.StringFixed(2),
		RemainingBudget: output.RemainingBudget.StringFixed(2),
		BudgetExceeded:  output.BudgetExceeded,
		Recommendation:  output.Recommendation,
	}
}

// ToSpendingTrendResponses converts a SpendingTrendsOutput.
func ToSpendingTrendResponses(output *report.SpendingTrendsOutput) []SpendingTrendResponse {
	responses := make([]SpendingTrendResponse, len(output.Trends))
	for i, t := range output.Trends {
		responses[i] = SpendingTrendResponse{Period: t.Period, TotalSpent: t.TotalSpent.StringFixed(2)}
	}
	return responses
}

// ToIncomeVsExpensesResponse converts an IncomeVsExpensesOutput.
func ToIncomeVsExpensesResponse(output *report.IncomeVsExpensesOutput) IncomeVsExpensesResponse {
	return IncomeVsExpensesResponse{
		Income:  output.Income.StringFixed(2),
		Expense: output.Expense.StringFixed(2),
	}
}

// ToDetailedReportResponse converts a DetailedReportOutput.
func ToDetailedReportResponse(output *report.DetailedReportOutput) DetailedReportResponse {
	return DetailedReportResponse{
		SpendingTrends:   ToSpendingTrendResponses(output.Trends),
		IncomeVsExpenses: ToIncomeVsExpensesResponse(output.IncomeVsExpenses),
	}
}
