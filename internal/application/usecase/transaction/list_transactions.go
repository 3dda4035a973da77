// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// Scope identifies whose ledger an operation reads.
type Scope struct {
	UserID   uuid.UUID  // the caller
	IsAdmin  bool       // caller holds the admin role
	OwnerID  *uuid.UUID // admin only: read another user's ledger
	AllUsers bool       // admin only: read every ledger
}

// Owner resolves the user filter for the scope. Non-admin callers are always
// pinned to their own ledger; nil means every user.
func (s Scope) Owner() *uuid.UUID {
	if s.IsAdmin {
		if s.OwnerID != nil {
			id := *s.OwnerID
			return &id
		}
		if s.AllUsers {
			return nil
		}
	}
	id := s.UserID
	return &id
}

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Scope       Scope
	Tags        []string
	IsRecurring *bool
	StartDate   *time.Time
	EndDate     *time.Time
	Category    *string
	Type        *entity.TransactionType
	Order       adapter.SortOrder
}

// TotalsOutput represents aggregated totals in the output.
type TotalsOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.StartDate.After(*input.EndDate) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateRange,
			"start date must not be after end date",
			domainerror.ErrInvalidDateRange,
		)
	}

	order := input.Order
	if order != adapter.SortDateAsc {
		order = adapter.SortDateDesc
	}

	// Build filter
	filter := adapter.TransactionFilter{
		UserID:      input.Scope.Owner(),
		Tags:        input.Tags,
		IsRecurring: input.IsRecurring,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Category:    input.Category,
		Type:        input.Type,
	}

	// Fetch transactions
	transactions, err := uc.transactionRepo.FindByFilter(ctx, filter, order)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totals := entity.Summarize(transactions)

	return &ListTransactionsOutput{
		Transactions: ToTransactionOutputs(transactions),
		Totals: TotalsOutput{
			IncomeTotal:  totals.Income,
			ExpenseTotal: totals.Expense,
			NetTotal:     totals.Balance(),
		},
	}, nil
}
