// Package report contains read-only reporting use cases over the ledger.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// Filter narrows the transactions a report is computed over.
type Filter struct {
	Scope     transaction.Scope
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
	Tags      []string
}

func (f Filter) validate() error {
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportRange,
			"start date must not be after end date",
			domainerror.ErrInvalidReportRange,
		)
	}
	return nil
}

func (f Filter) toRepository() adapter.TransactionFilter {
	return adapter.TransactionFilter{
		UserID:    f.Scope.Owner(),
		Tags:      f.Tags,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Category:  f.Category,
	}
}

// loadRows validates the filter and fetches the matching rows, oldest first.
func loadRows(ctx context.Context, repo adapter.TransactionRepository, f Filter) ([]*entity.Transaction, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	rows, err := repo.FindByFilter(ctx, f.toRepository(), adapter.SortDateAsc)
	if err != nil {
		return nil, fmt.Errorf("failed to load report rows: %w", err)
	}
	return rows, nil
}
