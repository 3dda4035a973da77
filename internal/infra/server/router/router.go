// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	goalController        *controller.GoalController
	reportController      *controller.ReportController
	writeRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	reportController *controller.ReportController,
	writeRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		budgetController:      budgetController,
		goalController:        goalController,
		reportController:      reportController,
		writeRateLimiter:      writeRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every group requires a
// bearer token; static segments are registered before /:id.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	limit := r.writeRateLimiter.Middleware()

	transactions := v1.Group("/transactions")
	{
		transactions.POST("", limit, r.transactionController.Create)
		transactions.GET("", r.transactionController.List)
		transactions.GET("/recurring", r.transactionController.ListRecurring)
		transactions.GET("/notifications", r.transactionController.Notifications)
		transactions.GET("/:id", r.transactionController.Get)
		transactions.PUT("/:id", limit, r.transactionController.Update)
		transactions.PUT("/:id/tags", limit, r.transactionController.UpdateTags)
		transactions.DELETE("/:id", limit, r.transactionController.Delete)
	}

	budgets := v1.Group("/budgets")
	{
		budgets.POST("", limit, r.budgetController.Create)
		budgets.GET("", r.budgetController.List)
		budgets.GET("/status", r.budgetController.Status)
		budgets.GET("/recommendations", r.budgetController.Recommendations)
		budgets.GET("/:id", r.budgetController.Get)
		budgets.PUT("/:id", limit, r.budgetController.Update)
		budgets.DELETE("/:id", limit, r.budgetController.Delete)
	}

	goals := v1.Group("/goals")
	{
		goals.POST("", limit, r.goalController.Create)
		goals.GET("", r.goalController.List)
		goals.GET("/progress", r.goalController.Progress)
		goals.GET("/:id", r.goalController.Get)
		goals.PUT("/:id", limit, r.goalController.Update)
		goals.DELETE("/:id", limit, r.goalController.Delete)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("", r.reportController.Financial)
		reports.GET("/chart", r.reportController.Chart)
		reports.GET("/monthly-budget", r.reportController.MonthlyBudget)
		reports.GET("/spending-trends", r.reportController.SpendingTrends)
		reports.GET("/income-vs-expenses", r.reportController.IncomeVsExpenses)
		reports.GET("/detailed", r.reportController.Detailed)
		reports.GET("/export", r.reportController.Export)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
