package goal_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/event"
	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/testutil"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

type fixture struct {
	goals        adapter.GoalRepository
	transactions adapter.TransactionRepository
	create       *transaction.CreateTransactionUseCase
	allocator    *goal.Allocator
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewTestDB(t)
	f := &fixture{
		goals:        persistence.NewGoalRepository(db),
		transactions: persistence.NewTransactionRepository(db),
	}
	f.allocator = goal.NewAllocator(f.goals)

	bus := event.NewBus()
	bus.Subscribe("goal-allocation", f.allocator)
	f.create = transaction.NewCreateTransactionUseCase(f.transactions, bus)
	return f
}

func (f *fixture) newGoal(t *testing.T, userID uuid.UUID, target, current, pct int64) *entity.Goal {
	out, err := goal.NewCreateGoalUseCase(f.goals).Execute(context.Background(), goal.CreateGoalInput{
		UserID:               userID,
		Title:                "goal",
		TargetAmount:         dec(target),
		CurrentAmount:        dec(current),
		AutoAllocate:         true,
		AllocationPercentage: dec(pct),
	})
	require.NoError(t, err)
	return out.Goal
}

func (f *fixture) current(t *testing.T, id uuid.UUID) decimal.Decimal {
	g, err := f.goals.FindByID(context.Background(), id)
	require.NoError(t, err)
	return g.CurrentAmount
}

func TestIncomeIsAllocatedToGoals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()

	almostDone := f.newGoal(t, userID, 100, 95, 10)
	roomy := f.newGoal(t, userID, 1000, 0, 20)
	otherUser := f.newGoal(t, uuid.New(), 1000, 0, 50)

	out, err := f.create.Execute(ctx, transaction.CreateTransactionInput{
		UserID:   userID,
		Type:     entity.TransactionTypeIncome,
		Amount:   dec(100),
		Category: "salary",
	})
	require.NoError(t, err)
	assert.NoError(t, out.AllocationError)

	assert.True(t, f.current(t, almostDone.ID).Equal(decimal.NewFromInt(95)), "share that would overshoot is skipped")
	assert.True(t, f.current(t, roomy.ID).Equal(decimal.NewFromInt(20)))
	assert.True(t, f.current(t, otherUser.ID).IsZero())
}

func TestExpensesAreNotAllocated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()
	g := f.newGoal(t, userID, 1000, 0, 50)

	_, err := f.create.Execute(ctx, transaction.CreateTransactionInput{
		UserID:   userID,
		Type:     entity.TransactionTypeExpense,
		Amount:   dec(100),
		Category: "food",
	})
	require.NoError(t, err)
	assert.True(t, f.current(t, g.ID).IsZero())
}

func TestAllocate_ReportsSkippedAndApplied(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()
	full := f.newGoal(t, userID, 100, 95, 10)
	open := f.newGoal(t, userID, 500, 0, 10)

	income := entity.NewTransaction(userID, entity.TransactionTypeIncome, decimal.NewFromInt(100), "bonus", time.Time{}, nil, "")
	result, err := f.allocator.Allocate(ctx, income)
	require.NoError(t, err)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, full.ID, result.Skipped[0].GoalID)
	require.Len(t, result.Applied, 1)
	assert.Equal(t, open.ID, result.Applied[0].GoalID)
	assert.True(t, result.Applied[0].Share.Equal(decimal.NewFromInt(10)))
}

func TestAllocate_FractionalShareFillsGoalExactly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()

	target := decimal.RequireFromString("0.30")
	current := decimal.RequireFromString("0.20")
	out, err := goal.NewCreateGoalUseCase(f.goals).Execute(ctx, goal.CreateGoalInput{
		UserID:               userID,
		Title:                "jar",
		TargetAmount:         &target,
		CurrentAmount:        &current,
		AutoAllocate:         true,
		AllocationPercentage: dec(10),
	})
	require.NoError(t, err)

	income := entity.NewTransaction(userID, entity.TransactionTypeIncome, decimal.NewFromInt(1), "refund", time.Time{}, nil, "")
	result, err := f.allocator.Allocate(ctx, income)
	require.NoError(t, err)

	require.Len(t, result.Applied, 1)
	assert.Empty(t, result.Skipped)
	assert.True(t, f.current(t, out.Goal.ID).Equal(target), "got %s", f.current(t, out.Goal.ID))
}

func TestAllocate_ConcurrentIncomeNeverOvershoots(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()
	g := f.newGoal(t, userID, 100, 0, 10)

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			income := entity.NewTransaction(userID, entity.TransactionTypeIncome, decimal.NewFromInt(100), "salary", time.Time{}, nil, "")
			_, err := f.allocator.Allocate(ctx, income)
			if err != nil {
				assert.Equal(t, domainerror.KindConflict, domainerror.KindOf(err))
			}
		}()
	}
	wg.Wait()

	assert.True(t, f.current(t, g.ID).Equal(decimal.NewFromInt(100)), "got %s", f.current(t, g.ID))
}

func TestGoalCRUDAndProgress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := uuid.New()

	_, err := goal.NewCreateGoalUseCase(f.goals).Execute(ctx, goal.CreateGoalInput{UserID: owner, Title: "x", TargetAmount: dec(0)})
	assert.ErrorIs(t, err, domainerror.ErrInvalidTargetAmount)

	_, err = goal.NewCreateGoalUseCase(f.goals).Execute(ctx, goal.CreateGoalInput{
		UserID: owner, Title: "x", TargetAmount: dec(10), AllocationPercentage: dec(101),
	})
	assert.ErrorIs(t, err, domainerror.ErrInvalidAllocationPercentage)

	_, err = goal.NewCreateGoalUseCase(f.goals).Execute(ctx, goal.CreateGoalInput{UserID: owner, Title: "   ", TargetAmount: dec(10)})
	assert.ErrorIs(t, err, domainerror.ErrMissingGoalFields)

	fraction := decimal.RequireFromString("10.005")
	_, err = goal.NewCreateGoalUseCase(f.goals).Execute(ctx, goal.CreateGoalInput{UserID: owner, Title: "x", TargetAmount: &fraction})
	assert.ErrorIs(t, err, domainerror.ErrInvalidTargetAmount)

	g := f.newGoal(t, owner, 300, 100, 0)

	_, err = goal.NewGetGoalUseCase(f.goals).Execute(ctx, goal.GetGoalInput{GoalID: g.ID, UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)

	title := "New laptop"
	updated, err := goal.NewUpdateGoalUseCase(f.goals).Execute(ctx, goal.UpdateGoalInput{
		GoalID: g.ID, UserID: owner, Title: &title, CurrentAmount: dec(300),
	})
	require.NoError(t, err)
	assert.Equal(t, "New laptop", updated.Goal.Title)

	progress, err := goal.NewTrackProgressUseCase(f.goals).Execute(ctx, goal.TrackProgressInput{UserID: owner})
	require.NoError(t, err)
	require.Len(t, progress.Goals, 1)
	assert.Equal(t, "100.00%", progress.Goals[0].PercentageSaved)
	assert.Equal(t, goal.StatusAchieved, progress.Goals[0].Status)

	list, err := goal.NewListGoalsUseCase(f.goals).Execute(ctx, goal.ListGoalsInput{UserID: owner})
	require.NoError(t, err)
	assert.Len(t, list.Goals, 1)

	deleted, err := goal.NewDeleteGoalUseCase(f.goals).Execute(ctx, goal.DeleteGoalInput{GoalID: g.ID, UserID: owner})
	require.NoError(t, err)
	assert.True(t, deleted.Success)
}
