// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/event"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID            uuid.UUID
	Type              entity.TransactionType
	Amount            *decimal.Decimal // Required
	Category          string           // Required
	Date              *time.Time       // Defaults to now
	Tags              []string
	Notes             string
	IsRecurring       bool
	RecurrencePattern entity.RecurrencePattern
	RecurrenceEndDate *time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
	// AllocationError is set when the transaction was stored but a subscriber
	// (goal allocation, event forwarding) failed. The transaction is kept.
	AllocationError error
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	publisher       event.Publisher
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	publisher event.Publisher,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		publisher:       publisher,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	category := strings.TrimSpace(input.Category)

	// Validate required fields
	if input.Type == "" || input.Amount == nil || category == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"type, amount and category are required",
			domainerror.ErrMissingTransactionFields,
		)
	}

	pattern, err := resolveRecurrence(input.IsRecurring, input.RecurrencePattern)
	if err != nil {
		return nil, err
	}

	var date time.Time
	if input.Date != nil {
		date = *input.Date
	}

	// Create transaction entity
	transaction := entity.NewTransaction(
		input.UserID,
		input.Type,
		*input.Amount,
		category,
		date,
		valueobject.NewTags(input.Tags),
		input.Notes,
	)
	transaction.SetRecurrence(pattern, input.RecurrenceEndDate)

	if err := validateTransaction(transaction); err != nil {
		return nil, err
	}

	// Save transaction to database
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	output := &CreateTransactionOutput{
		Transaction: ToTransactionOutput(transaction),
	}

	// Notify subscribers; their failures never undo the write
	if uc.publisher != nil {
		err := uc.publisher.Publish(ctx, event.TransactionRecorded{
			Transaction: transaction,
			OccurredAt:  time.Now().UTC(),
		})
		if err != nil {
			slog.Warn("Transaction stored but post-write handling failed",
				"transaction_id", transaction.ID,
				"user_id", transaction.UserID,
				"error", err,
			)
			output.AllocationError = err
		}
	}

	return output, nil
}
