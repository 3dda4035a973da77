package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/report"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	financialUseCase        *report.FinancialReportUseCase
	chartUseCase            *report.ChartDataUseCase
	monthlyBudgetUseCase    *report.MonthlyBudgetUseCase
	spendingTrendsUseCase   *report.SpendingTrendsUseCase
	incomeVsExpensesUseCase *report.IncomeVsExpensesUseCase
	detailedUseCase         *report.DetailedReportUseCase
	exportUseCase           *report.ExportReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	financialUseCase *report.FinancialReportUseCase,
	chartUseCase *report.ChartDataUseCase,
	monthlyBudgetUseCase *report.MonthlyBudgetUseCase,
	spendingTrendsUseCase *report.SpendingTrendsUseCase,
	incomeVsExpensesUseCase *report.IncomeVsExpensesUseCase,
	detailedUseCase *report.DetailedReportUseCase,
	exportUseCase *report.ExportReportUseCase,
) *ReportController {
	return &ReportController{
		financialUseCase:        financialUseCase,
		chartUseCase:            chartUseCase,
		monthlyBudgetUseCase:    monthlyBudgetUseCase,
		spendingTrendsUseCase:   spendingTrendsUseCase,
		incomeVsExpensesUseCase: incomeVsExpensesUseCase,
		detailedUseCase:         detailedUseCase,
		exportUseCase:           exportUseCase,
	}
}

// filter reads the report filter or writes a 400.
func (c *ReportController) filter(ctx *gin.Context) (report.Filter, bool) {
	if _, ok := requireUser(ctx); !ok {
		return report.Filter{}, false
	}
	f, err := reportFilter(ctx)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return report.Filter{}, false
	}
	return f, true
}

// Financial handles GET /reports requests.
func (c *ReportController) Financial(ctx *gin.Context) {
	f, ok := c.filter(ctx)
	if !ok {
		return
	}

	output, err := c.financialUseCase.Execute(ctx.Request.Context(), report.FinancialReportInput{Filter: f})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Financial report generated successfully",
		Data:    dto.ToFinancialReportResponse(output),
	})
}

// Chart handles GET /reports/chart requests.
func (c *ReportController) Chart(ctx *gin.Context) {
	f, ok := c.filter(ctx)
	if !ok {
		return
	}

	output, err := c.chartUseCase.Execute(ctx.Request.Context(), report.FinancialReportInput{Filter: f})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Chart data generated successfully",
		Data:    dto.ToChartDataResponse(output),
	})
}

// MonthlyBudget handles GET /reports/monthly-budget?budget=&month=&year= requests.
func (c *ReportController) MonthlyBudget(ctx *gin.Context) {
	if _, ok := requireUser(ctx); !ok {
		return
	}
	scope, err := callerScope(ctx)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}

	amount, err := decimal.NewFromString(ctx.Query("budget"))
	if err != nil {
		badRequest(ctx, codeInvalidParameter, "budget must be a number")
		return
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		badRequest(ctx, codeInvalidParameter, "month must be an integer")
		return
	}
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		badRequest(ctx, codeInvalidParameter, "year must be an integer")
		return
	}

	output, err := c.monthlyBudgetUseCase.Execute(ctx.Request.Context(), report.MonthlyBudgetInput{
		Scope:  scope,
		Budget: amount,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Monthly budget report generated successfully",
		Data:    dto.ToMonthlyBudgetResponse(output),
	})
}

// SpendingTrends handles GET /reports/spending-trends requests.
func (c *ReportController) SpendingTrends(ctx *gin.Context) {
	f, ok := c.filter(ctx)
	if !ok {
		return
	}

	output, err := c.spendingTrendsUseCase.Execute(ctx.Request.Context(), report.SpendingTrendsInput{Filter: f})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Spending trends generated successfully",
		Data:    dto.ToSpendingTrendResponses(output),
	})
}

// IncomeVsExpenses handles GET /reports/income-vs-expenses requests.
func (c *ReportController) IncomeVsExpenses(ctx *gin.Context) {
	f, ok := c.filter(ctx)
	if !ok {
		return
	}

	output, err := c.incomeVsExpensesUseCase.Execute(ctx.Request.Context(), report.IncomeVsExpensesInput{Filter: f})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Income vs expenses generated successfully",
		Data:    dto.ToIncomeVsExpensesResponse(output),
	})
}

// Detailed handles GET /reports/detailed requests.
func (c *ReportController) Detailed(ctx *gin.Context) {
	f, ok := c.filter(ctx)
	if !ok {
		return
	}

	output, err := c.detailedUseCase.Execute(ctx.Request.Context(), f)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Detailed report generated successfully",
		Data:    dto.ToDetailedReportResponse(output),
	})
}

// Export handles GET /reports/export?format=csv|xlsx requests.
func (c *ReportController) Export(ctx *gin.Context) {
	f, ok := c.filter(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportReportInput{
		Filter: f,
		Format: ctx.DefaultQuery("format", "csv"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.FileName+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}
