// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/event"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/application/usecase/recurrence"
	"github.com/finance-tracker/ledger/internal/application/usecase/report"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/cache"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/export"
	"github.com/finance-tracker/ledger/internal/integration/messaging"
	"github.com/finance-tracker/ledger/internal/integration/notification"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	RateLimiter  *middleware.RateLimiter
	Worker       *notification.Worker
	TokenService adapter.TokenService

	Sweep         *recurrence.SweepUseCase
	Financial     *report.FinancialReportUseCase
	MonthlyBudget *report.MonthlyBudgetUseCase
}

// Externals are the optional connections created by the caller.
// A nil Redis client disables notification de-duplication; a nil Publisher
// falls back to logging messages.
type Externals struct {
	Redis     *redis.Client
	Publisher adapter.MessagePublisher
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, ext Externals) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	publisher := ext.Publisher
	if publisher == nil {
		publisher = messaging.NewLogPublisher(slog.Default())
	}

	var dedup adapter.NotificationDeduplicator
	if ext.Redis != nil {
		dedup = cache.NewNotificationDeduplicator(ext.Redis)
	} else {
		slog.Warn("Redis not configured, recurring notifications will not be de-duplicated")
	}

	// Wire post-write reactions
	bus := event.NewBus()
	bus.Subscribe("goal-allocator", goal.NewAllocator(goalRepo))
	if ext.Publisher != nil {
		bus.Subscribe("amqp-forwarder", messaging.NewForwarder(ext.Publisher))
	}

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, bus)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	updateTagsUseCase := transaction.NewUpdateTagsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create recurrence use cases
	classifyUseCase := recurrence.NewClassifyUseCase(transactionRepo)
	sweepUseCase := recurrence.NewSweepUseCase(transactionRepo, dedup, publisher)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, transactionRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	checkStatusUseCase := budget.NewCheckStatusUseCase(budgetRepo, transactionRepo)
	recommendUseCase := budget.NewRecommendUseCase(budgetRepo, transactionRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	trackProgressUseCase := goal.NewTrackProgressUseCase(goalRepo)

	// Create report use cases
	financialUseCase := report.NewFinancialReportUseCase(transactionRepo)
	chartUseCase := report.NewChartDataUseCase(transactionRepo)
	monthlyBudgetUseCase := report.NewMonthlyBudgetUseCase(transactionRepo)
	spendingTrendsUseCase := report.NewSpendingTrendsUseCase(transactionRepo)
	incomeVsExpensesUseCase := report.NewIncomeVsExpensesUseCase(transactionRepo)
	detailedUseCase := report.NewDetailedReportUseCase(transactionRepo)
	exportUseCase := report.NewExportReportUseCase(transactionRepo, map[string]adapter.ReportWriter{
		"csv":  export.NewCSVWriter(),
		"xlsx": export.NewXLSXWriter(),
	})

	// Create controllers
	var redisCheck controller.HealthChecker
	if ext.Redis != nil {
		redisCheck = func(ctx context.Context) error { return cache.Ping(ctx, ext.Redis) }
	}
	healthController := controller.NewHealthController(func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}, redisCheck)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		updateTagsUseCase,
		deleteTransactionUseCase,
		classifyUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		getBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		checkStatusUseCase,
		recommendUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		trackProgressUseCase,
	)

	reportController := controller.NewReportController(
		financialUseCase,
		chartUseCase,
		monthlyBudgetUseCase,
		spendingTrendsUseCase,
		incomeVsExpensesUseCase,
		detailedUseCase,
		exportUseCase,
	)

	// Create middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.RateLimit.Enabled,
		cfg.RateLimit.MaxRequests,
		cfg.RateLimit.Window,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create background worker
	worker := notification.NewWorker(sweepUseCase, notification.WorkerConfig{
		PollInterval: cfg.Notifier.PollInterval,
		DedupeTTL:    cfg.Notifier.DedupeTTL,
	})

	r := router.NewRouter(
		healthController,
		transactionController,
		budgetController,
		goalController,
		reportController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:        cfg,
		DB:            db,
		Router:        r,
		RateLimiter:   rateLimiter,
		Worker:        worker,
		TokenService:  tokenService,
		Sweep:         sweepUseCase,
		Financial:     financialUseCase,
		MonthlyBudget: monthlyBudgetUseCase,
	}
}
