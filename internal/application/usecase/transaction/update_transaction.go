// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID     uuid.UUID
	UserID            uuid.UUID
	IsAdmin           bool
	Type              *entity.TransactionType
	Amount            *decimal.Decimal
	Category          *string
	Date              *time.Time
	Tags              *[]string
	Notes             *string
	IsRecurring       *bool
	RecurrencePattern *entity.RecurrencePattern
	RecurrenceEndDate *time.Time
	ClearEndDate      bool
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles partial transaction updates.
// Updates never trigger goal allocation.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := findVisible(ctx, uc.transactionRepo, input.TransactionID, input.UserID, input.IsAdmin)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Category != nil {
		transaction.Category = strings.TrimSpace(*input.Category)
	}
	if input.Date != nil {
		transaction.Date = input.Date.UTC()
	}
	if input.Tags != nil {
		transaction.Tags = valueobject.NewTags(*input.Tags)
	}
	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}

	// Merge recurrence settings, then re-check them as a whole
	isRecurring := transaction.IsRecurring
	if input.IsRecurring != nil {
		isRecurring = *input.IsRecurring
	}
	pattern := transaction.RecurrencePattern
	if input.RecurrencePattern != nil {
		pattern = *input.RecurrencePattern
	}
	endDate := transaction.RecurrenceEndDate
	if input.RecurrenceEndDate != nil {
		endDate = input.RecurrenceEndDate
	}
	if input.ClearEndDate {
		endDate = nil
	}
	if !isRecurring && input.RecurrencePattern == nil {
		pattern = entity.RecurrenceNone
	}
	resolved, err := resolveRecurrence(isRecurring, pattern)
	if err != nil {
		return nil, err
	}
	transaction.SetRecurrence(resolved, endDate)

	if err := validateTransaction(transaction); err != nil {
		return nil, err
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: ToTransactionOutput(transaction),
	}, nil
}
