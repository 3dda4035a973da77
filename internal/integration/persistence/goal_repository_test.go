package persistence_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/testutil"
)

func TestGoalRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewGoalRepository(testutil.NewTestDB(t))
	userID := uuid.New()

	goal := entity.NewGoal(userID, "Emergency fund", decimal.NewFromInt(1000), nil)
	goal.AutoAllocate = true
	goal.AllocationPercentage = decimal.NewFromInt(10)
	require.NoError(t, repo.Create(ctx, goal))

	manual := entity.NewGoal(userID, "Bike", decimal.NewFromInt(300), nil)
	require.NoError(t, repo.Create(ctx, manual))

	all, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	auto, err := repo.FindAutoAllocateByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, auto, 1)
	assert.Equal(t, goal.ID, auto[0].ID)
	assert.True(t, auto[0].AllocationPercentage.Equal(decimal.NewFromInt(10)))

	goal.Title = "Rainy day"
	require.NoError(t, repo.Update(ctx, goal))
	found, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rainy day", found.Title)

	require.NoError(t, repo.Delete(ctx, goal.ID))
	_, err = repo.FindByID(ctx, goal.ID)
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
}

func TestGoalRepository_AllocateBounded(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewGoalRepository(testutil.NewTestDB(t))

	goal := entity.NewGoal(uuid.New(), "Trip", decimal.NewFromInt(100), nil)
	goal.CurrentAmount = decimal.NewFromInt(95)
	require.NoError(t, repo.Create(ctx, goal))

	applied, err := repo.AllocateBounded(ctx, goal.ID, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = repo.AllocateBounded(ctx, goal.ID, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, applied)

	found, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.True(t, found.CurrentAmount.Equal(decimal.NewFromInt(100)), "got %s", found.CurrentAmount)
}

func TestGoalRepository_AllocateBounded_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewGoalRepository(testutil.NewTestDB(t))

	goal := entity.NewGoal(uuid.New(), "Laptop", decimal.NewFromInt(100), nil)
	require.NoError(t, repo.Create(ctx, goal))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.AllocateBounded(ctx, goal.ID, decimal.NewFromInt(10))
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, applied)
	found, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.True(t, found.CurrentAmount.Equal(decimal.NewFromInt(100)), "got %s", found.CurrentAmount)
}

func TestGoalRepository_AllocateBounded_FractionalAmounts(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewGoalRepository(testutil.NewTestDB(t))

	exact := entity.NewGoal(uuid.New(), "Coffee jar", decimal.RequireFromString("0.30"), nil)
	exact.CurrentAmount = decimal.RequireFromString("0.20")
	require.NoError(t, repo.Create(ctx, exact))

	applied, err := repo.AllocateBounded(ctx, exact.ID, decimal.RequireFromString("0.10"))
	require.NoError(t, err)
	assert.True(t, applied, "a share that exactly fills the goal applies")

	found, err := repo.FindByID(ctx, exact.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.30", found.CurrentAmount.StringFixed(2))
	assert.True(t, found.CurrentAmount.Equal(decimal.RequireFromString("0.3")), "got %s", found.CurrentAmount)

	partial := entity.NewGoal(uuid.New(), "Stamps", decimal.NewFromInt(1), nil)
	partial.CurrentAmount = decimal.RequireFromString("0.10")
	require.NoError(t, repo.Create(ctx, partial))

	applied, err = repo.AllocateBounded(ctx, partial.ID, decimal.RequireFromString("0.20"))
	require.NoError(t, err)
	assert.True(t, applied)

	found, err = repo.FindByID(ctx, partial.ID)
	require.NoError(t, err)
	assert.True(t, found.CurrentAmount.Equal(decimal.RequireFromString("0.3")), "got %s", found.CurrentAmount)
}

func TestGoalRepository_AllocateBounded_MissingGoal(t *testing.T) {
	repo := persistence.NewGoalRepository(testutil.NewTestDB(t))

	applied, err := repo.AllocateBounded(context.Background(), uuid.New(), decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.False(t, applied)
}
