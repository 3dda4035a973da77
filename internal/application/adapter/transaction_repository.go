// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// SortOrder controls the date ordering of listed transactions.
type SortOrder string

const (
	SortDateDesc SortOrder = "desc"
	SortDateAsc  SortOrder = "asc"
)

// TransactionFilter defines filter options for listing transactions.
// Every set field narrows the result; unset fields do not filter.
type TransactionFilter struct {
	UserID      *uuid.UUID // nil lists across all users
	Tags        []string   // any-of match
	IsRecurring *bool
	StartDate   *time.Time // inclusive
	EndDate     *time.Time // inclusive
	Category    *string    // exact match
	Type        *entity.TransactionType
}

// TransactionRepository defines the interface for transaction persistence operations.
// Missing rows surface as domainerror.ErrTransactionNotFound, every other
// failure wraps domainerror.ErrStoreUnavailable.
type TransactionRepository interface {
	// Create stores a new transaction together with its tags.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, ordered by date.
	FindByFilter(ctx context.Context, filter TransactionFilter, order SortOrder) ([]*entity.Transaction, error)

	// Update persists every field of an existing transaction, tags included.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// ReplaceTags swaps the tag set of a transaction wholesale and stamps updatedAt.
	ReplaceTags(ctx context.Context, id uuid.UUID, tags valueobject.Tags, updatedAt time.Time) error

	// Delete permanently removes a transaction and its tags.
	Delete(ctx context.Context, id uuid.UUID) error
}
