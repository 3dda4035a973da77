package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/testutil"
)

func TestBudgetRepository(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewBudgetRepository(testutil.NewTestDB(t))
	alice, bob := uuid.New(), uuid.New()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	food := "food"
	b1 := entity.NewBudget(alice, &food, decimal.NewFromInt(100), &start, nil)
	b2 := entity.NewBudget(alice, nil, decimal.NewFromInt(1000), &start, nil)
	b3 := entity.NewBudget(bob, nil, decimal.NewFromInt(50), &start, nil)
	for _, b := range []*entity.Budget{b1, b2, b3} {
		require.NoError(t, repo.Create(ctx, b))
	}

	own, err := repo.FindByUserID(ctx, &alice)
	require.NoError(t, err)
	assert.Len(t, own, 2)

	all, err := repo.FindByUserID(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := repo.FindByID(ctx, b1.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Category)
	assert.Equal(t, "food", *found.Category)
	require.NotNil(t, found.StartDate)
	assert.True(t, found.StartDate.Equal(start))
	assert.Nil(t, found.EndDate)

	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	found.EndDate = &end
	found.Category = nil
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, b1.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.Category)
	require.NotNil(t, updated.EndDate)
	assert.True(t, updated.EndDate.Equal(end))

	require.NoError(t, repo.Delete(ctx, b1.ID))
	_, err = repo.FindByID(ctx, b1.ID)
	assert.ErrorIs(t, err, domainerror.ErrBudgetNotFound)
}
