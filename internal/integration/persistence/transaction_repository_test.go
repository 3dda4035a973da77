package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/testutil"
)

func newTxn(userID uuid.UUID, kind entity.TransactionType, amount int64, category string, date time.Time, tags ...string) *entity.Transaction {
	return entity.NewTransaction(userID, kind, decimal.NewFromInt(amount), category, date, valueobject.NewTags(tags), "")
}

func TestTransactionRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewTransactionRepository(testutil.NewTestDB(t))
	userID := uuid.New()
	date := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	txn := newTxn(userID, entity.TransactionTypeExpense, 42, "groceries", date, "food", "weekly")
	require.NoError(t, repo.Create(ctx, txn))

	found, err := repo.FindByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.ID, found.ID)
	assert.Equal(t, userID, found.UserID)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(42)))
	assert.Equal(t, "groceries", found.Category)
	assert.True(t, found.Date.Equal(date))
	assert.Equal(t, []string{"food", "weekly"}, found.Tags.Strings())
	assert.Equal(t, entity.RecurrenceNone, found.RecurrencePattern)
}

func TestTransactionRepository_FindByID_NotFound(t *testing.T) {
	repo := persistence.NewTransactionRepository(testutil.NewTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
}

func TestTransactionRepository_FindByFilter(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewTransactionRepository(testutil.NewTestDB(t))
	alice, bob := uuid.New(), uuid.New()
	day := func(d int) time.Time { return time.Date(2025, 3, d, 9, 0, 0, 0, time.UTC) }

	rent := newTxn(alice, entity.TransactionTypeExpense, 800, "rent", day(1), "home")
	salary := newTxn(alice, entity.TransactionTypeIncome, 3000, "salary", day(5), "work")
	coffee := newTxn(alice, entity.TransactionTypeExpense, 4, "food", day(9), "treat", "work")
	other := newTxn(bob, entity.TransactionTypeExpense, 10, "food", day(3), "work")
	for _, txn := range []*entity.Transaction{rent, salary, coffee, other} {
		require.NoError(t, repo.Create(ctx, txn))
	}

	ids := func(rows []*entity.Transaction) []uuid.UUID {
		out := make([]uuid.UUID, len(rows))
		for i, r := range rows {
			out[i] = r.ID
		}
		return out
	}

	t.Run("owner only, newest first", func(t *testing.T) {
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: &alice}, adapter.SortDateDesc)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{coffee.ID, salary.ID, rent.ID}, ids(rows))
	})

	t.Run("all users, oldest first", func(t *testing.T) {
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{}, adapter.SortDateAsc)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{rent.ID, other.ID, salary.ID, coffee.ID}, ids(rows))
	})

	t.Run("any-of tags", func(t *testing.T) {
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: &alice, Tags: []string{"home", "treat"}}, adapter.SortDateAsc)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{rent.ID, coffee.ID}, ids(rows))
	})

	t.Run("inclusive date bounds", func(t *testing.T) {
		start, end := day(1), day(5)
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: &alice, StartDate: &start, EndDate: &end}, adapter.SortDateAsc)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{rent.ID, salary.ID}, ids(rows))
	})

	t.Run("category and type", func(t *testing.T) {
		category := "food"
		expense := entity.TransactionTypeExpense
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{Category: &category, Type: &expense}, adapter.SortDateAsc)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{other.ID, coffee.ID}, ids(rows))
	})

	t.Run("tags are loaded", func(t *testing.T) {
		rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: &bob}, adapter.SortDateAsc)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"work"}, rows[0].Tags.Strings())
	})
}

func TestTransactionRepository_RecurringFilter(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewTransactionRepository(testutil.NewTestDB(t))
	userID := uuid.New()
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	plain := newTxn(userID, entity.TransactionTypeExpense, 5, "misc", now)
	rec := newTxn(userID, entity.TransactionTypeExpense, 15, "streaming", now)
	rec.SetRecurrence(entity.RecurrenceMonthly, nil)
	require.NoError(t, repo.Create(ctx, plain))
	require.NoError(t, repo.Create(ctx, rec))

	recurring := true
	rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{IsRecurring: &recurring}, adapter.SortDateAsc)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, rec.ID, rows[0].ID)
	assert.Equal(t, entity.RecurrenceMonthly, rows[0].RecurrencePattern)
}

func TestTransactionRepository_UpdateReplaceTagsDelete(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewTransactionRepository(testutil.NewTestDB(t))
	txn := newTxn(uuid.New(), entity.TransactionTypeExpense, 20, "fuel", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), "car")
	require.NoError(t, repo.Create(ctx, txn))

	txn.Amount = decimal.NewFromInt(25)
	txn.Notes = "full tank"
	txn.Tags = valueobject.NewTags([]string{"car", "trip"})
	require.NoError(t, repo.Update(ctx, txn))

	found, err := repo.FindByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "full tank", found.Notes)
	assert.Equal(t, []string{"car", "trip"}, found.Tags.Strings())

	require.NoError(t, repo.ReplaceTags(ctx, txn.ID, valueobject.NewTags([]string{"work"}), time.Now()))
	found, err = repo.FindByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"work"}, found.Tags.Strings())

	require.NoError(t, repo.Delete(ctx, txn.ID))
	_, err = repo.FindByID(ctx, txn.ID)
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, txn.ID), domainerror.ErrTransactionNotFound)
	assert.ErrorIs(t, repo.Update(ctx, txn), domainerror.ErrTransactionNotFound)
	assert.ErrorIs(t, repo.ReplaceTags(ctx, txn.ID, valueobject.NewTags([]string{"x"}), time.Now()), domainerror.ErrTransactionNotFound)
}

func TestTransactionRepository_StoreFailureIsUnavailable(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := persistence.NewTransactionRepository(db)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.FindByFilter(context.Background(), adapter.TransactionFilter{}, adapter.SortDateDesc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerror.ErrStoreUnavailable)
	assert.Equal(t, domainerror.KindUnavailable, domainerror.KindOf(err))
}
