package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/testutil"
)

type env struct {
	budgets      adapter.BudgetRepository
	transactions adapter.TransactionRepository
	start        time.Time
}

func newEnv(t *testing.T) *env {
	db := testutil.NewTestDB(t)
	return &env{
		budgets:      persistence.NewBudgetRepository(db),
		transactions: persistence.NewTransactionRepository(db),
		start:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (e *env) spend(t *testing.T, userID uuid.UUID, category string, amount int64, day int) {
	txn := entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(amount), category,
		e.start.AddDate(0, 0, day), valueobject.Tags{}, "")
	require.NoError(t, e.transactions.Create(context.Background(), txn))
}

func (e *env) newBudget(t *testing.T, userID uuid.UUID, category *string, amount int64) *entity.Budget {
	a := decimal.NewFromInt(amount)
	out, err := budget.NewCreateBudgetUseCase(e.budgets).Execute(context.Background(), budget.CreateBudgetInput{
		UserID:    userID,
		Category:  category,
		Amount:    &a,
		StartDate: &e.start,
	})
	require.NoError(t, err)
	return out.Budget
}

func TestCheckStatus_Thresholds(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	userID := uuid.New()
	food := "food"
	e.newBudget(t, userID, &food, 100)
	uc := budget.NewCheckStatusUseCase(e.budgets, e.transactions)

	e.spend(t, userID, "food", 60, 1)
	out, err := uc.Execute(ctx, budget.CheckStatusInput{UserID: userID})
	require.NoError(t, err)
	assert.Empty(t, out.Alerts)
	require.Len(t, out.Statuses, 1)
	assert.Equal(t, entity.BudgetLevelOK, out.Statuses[0].Level)

	e.spend(t, userID, "food", 30, 2)
	out, err = uc.Execute(ctx, budget.CheckStatusInput{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, []string{"You are nearing your budget for food."}, out.Alerts)

	e.spend(t, userID, "food", 20, 3)
	out, err = uc.Execute(ctx, budget.CheckStatusInput{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Budget exceeded for food!"}, out.Alerts)
	assert.True(t, out.Statuses[0].Spent.Equal(decimal.NewFromInt(110)))
	assert.True(t, out.Statuses[0].Remaining.Equal(decimal.NewFromInt(-10)))
}

func TestCheckStatus_ScopeAndWindow(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	userID := uuid.New()
	e.newBudget(t, userID, nil, 100)

	e.spend(t, userID, "rent", 50, 0)
	e.spend(t, userID, "food", 35, 1)
	e.spend(t, userID, "food", 500, -1)      // before the budget starts
	e.spend(t, uuid.New(), "food", 500, 1) // another user

	out, err := budget.NewCheckStatusUseCase(e.budgets, e.transactions).Execute(ctx, budget.CheckStatusInput{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, []string{"You are nearing your budget for overall."}, out.Alerts)
	assert.True(t, out.Statuses[0].Spent.Equal(decimal.NewFromInt(85)))
}

func TestRecommend_OnePerBudget(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	userID := uuid.New()
	food, fun, travel := "food", "fun", "travel"
	e.newBudget(t, userID, &food, 100)
	e.newBudget(t, userID, &fun, 100)
	e.newBudget(t, userID, &travel, 100)

	e.spend(t, userID, "food", 101, 1)
	e.spend(t, userID, "fun", 51, 1)
	e.spend(t, userID, "travel", 50, 1)

	out, err := budget.NewRecommendUseCase(e.budgets, e.transactions).Execute(ctx, budget.RecommendInput{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"You have exceeded your budget (100) for food. Consider increasing your budget or reducing expenses.",
		"You have used more than 50% of your budget (fun). Consider adjusting your budget or tracking expenses more carefully.",
		"You have used less than 50% of your budget for travel. You could potentially lower your budget or save more.",
	}, out.Messages())
}

func TestRecommend_ExactAmountIsNotExceeded(t *testing.T) {
	assert.Equal(t, entity.BudgetUsageOverHalf, (&entity.Budget{Amount: decimal.NewFromInt(100)}).UsageFor(decimal.NewFromInt(100)))
	assert.Equal(t, "", budget.AlertFor("food", entity.BudgetLevelOK))
}

func TestBudgetCRUD(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := uuid.New()

	zero := decimal.Zero
	_, err := budget.NewCreateBudgetUseCase(e.budgets).Execute(ctx, budget.CreateBudgetInput{UserID: owner, Amount: &zero})
	assert.ErrorIs(t, err, domainerror.ErrInvalidBudgetAmount)

	fraction := decimal.RequireFromString("99.999")
	_, err = budget.NewCreateBudgetUseCase(e.budgets).Execute(ctx, budget.CreateBudgetInput{UserID: owner, Amount: &fraction})
	assert.ErrorIs(t, err, domainerror.ErrInvalidBudgetAmount)

	end := e.start.AddDate(0, 0, -1)
	ten := decimal.NewFromInt(10)
	_, err = budget.NewCreateBudgetUseCase(e.budgets).Execute(ctx, budget.CreateBudgetInput{
		UserID: owner, Amount: &ten, StartDate: &e.start, EndDate: &end,
	})
	assert.ErrorIs(t, err, domainerror.ErrInvalidBudgetPeriod)

	b := e.newBudget(t, owner, nil, 200)
	e.newBudget(t, uuid.New(), nil, 300)

	_, err = budget.NewGetBudgetUseCase(e.budgets, e.transactions).Execute(ctx, budget.GetBudgetInput{BudgetID: b.ID, UserID: uuid.New()})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))

	e.spend(t, owner, "any", 40, 1)
	got, err := budget.NewGetBudgetUseCase(e.budgets, e.transactions).Execute(ctx, budget.GetBudgetInput{BudgetID: b.ID, UserID: owner})
	require.NoError(t, err)
	assert.True(t, got.Remaining.Equal(decimal.NewFromInt(160)))

	own, err := budget.NewListBudgetsUseCase(e.budgets).Execute(ctx, budget.ListBudgetsInput{UserID: owner, AllUsers: true})
	require.NoError(t, err)
	assert.Len(t, own.Budgets, 1)

	all, err := budget.NewListBudgetsUseCase(e.budgets).Execute(ctx, budget.ListBudgetsInput{UserID: owner, IsAdmin: true, AllUsers: true})
	require.NoError(t, err)
	assert.Len(t, all.Budgets, 2)

	category := "groceries"
	updated, err := budget.NewUpdateBudgetUseCase(e.budgets).Execute(ctx, budget.UpdateBudgetInput{
		BudgetID: b.ID, UserID: owner, Category: &category,
	})
	require.NoError(t, err)
	assert.Equal(t, "groceries", updated.Budget.Scope())

	_, err = budget.NewDeleteBudgetUseCase(e.budgets).Execute(ctx, budget.DeleteBudgetInput{BudgetID: b.ID, UserID: owner})
	require.NoError(t, err)
	_, err = budget.NewGetBudgetUseCase(e.budgets, e.transactions).Execute(ctx, budget.GetBudgetInput{BudgetID: b.ID, UserID: owner})
	assert.ErrorIs(t, err, domainerror.ErrBudgetNotFound)
}
