// Package recurrence contains use cases around recurring transactions.
package recurrence

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ClassifyInput represents the input for classifying recurring transactions.
type ClassifyInput struct {
	Scope transaction.Scope
	Now   time.Time // defaults to the current instant
}

// ClassifyOutput holds the missed and upcoming recurring transactions.
type ClassifyOutput struct {
	Missed   []*transaction.TransactionOutput
	Upcoming []*transaction.TransactionOutput
}

// ClassifyUseCase groups active recurring transactions into buckets.
type ClassifyUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewClassifyUseCase creates a new ClassifyUseCase instance.
func NewClassifyUseCase(transactionRepo adapter.TransactionRepository) *ClassifyUseCase {
	return &ClassifyUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the classification.
func (uc *ClassifyUseCase) Execute(ctx context.Context, input ClassifyInput) (*ClassifyOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	buckets, err := classify(ctx, uc.transactionRepo, input.Scope, now.UTC())
	if err != nil {
		return nil, err
	}

	return &ClassifyOutput{
		Missed:   transaction.ToTransactionOutputs(buckets.Missed),
		Upcoming: transaction.ToTransactionOutputs(buckets.Upcoming),
	}, nil
}

func classify(ctx context.Context, repo adapter.TransactionRepository, scope transaction.Scope, now time.Time) (entity.RecurringBuckets, error) {
	recurring := true
	rows, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:      scope.Owner(),
		IsRecurring: &recurring,
	}, adapter.SortDateAsc)
	if err != nil {
		return entity.RecurringBuckets{}, fmt.Errorf("failed to load recurring transactions: %w", err)
	}

	return entity.ClassifyRecurring(rows, now), nil
}
