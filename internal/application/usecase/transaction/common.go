// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

const (
	// MaxCategoryLength is the maximum allowed length for a category name.
	MaxCategoryLength = 100
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 1000
)

// TransactionOutput represents a single transaction in use case outputs.
type TransactionOutput struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Type              entity.TransactionType
	Amount            decimal.Decimal
	Category          string
	Date              time.Time
	Tags              []string
	Notes             string
	IsRecurring       bool
	RecurrencePattern entity.RecurrencePattern
	RecurrenceEndDate *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ToTransactionOutput converts a domain transaction to its output form.
func ToTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:                t.ID,
		UserID:            t.UserID,
		Type:              t.Type,
		Amount:            t.Amount,
		Category:          t.Category,
		Date:              t.Date,
		Tags:              t.Tags.Strings(),
		Notes:             t.Notes,
		IsRecurring:       t.IsRecurring,
		RecurrencePattern: t.RecurrencePattern,
		RecurrenceEndDate: t.RecurrenceEndDate,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ToTransactionOutputs converts a list of domain transactions.
func ToTransactionOutputs(transactions []*entity.Transaction) []*TransactionOutput {
	outputs := make([]*TransactionOutput, len(transactions))
	for i, t := range transactions {
		outputs[i] = ToTransactionOutput(t)
	}
	return outputs
}

// validateTransaction checks the invariants of a complete transaction record.
func validateTransaction(t *entity.Transaction) error {
	if !t.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !t.Amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !entity.FitsCents(t.Amount) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must have at most two decimal places",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if strings.TrimSpace(t.Category) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"category is required",
			domainerror.ErrMissingTransactionFields,
		)
	}

	if len(t.Category) > MaxCategoryLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTooLong,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrCategoryTooLong,
		)
	}

	if len(t.Notes) > MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}

	if !t.RecurrencePattern.IsValid() || t.IsRecurring == (t.RecurrencePattern == entity.RecurrenceNone) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecurrence,
			"recurring transactions need a pattern of 'daily', 'weekly' or 'monthly'",
			domainerror.ErrInvalidRecurrencePattern,
		)
	}

	return nil
}

// resolveRecurrence turns the request flag and pattern into a validated pair.
func resolveRecurrence(isRecurring bool, pattern entity.RecurrencePattern) (entity.RecurrencePattern, error) {
	if pattern == "" {
		pattern = entity.RecurrenceNone
	}
	if !pattern.IsValid() {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecurrence,
			"recurrence pattern must be 'none', 'daily', 'weekly' or 'monthly'",
			domainerror.ErrInvalidRecurrencePattern,
		)
	}
	if isRecurring && pattern == entity.RecurrenceNone {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecurrence,
			"recurring transactions need a pattern of 'daily', 'weekly' or 'monthly'",
			domainerror.ErrInvalidRecurrencePattern,
		)
	}
	if !isRecurring {
		return entity.RecurrenceNone, nil
	}
	return pattern, nil
}

// findVisible loads a transaction and hides it from callers that neither own it nor are admins.
func findVisible(
	ctx context.Context,
	repo adapter.TransactionRepository,
	id uuid.UUID,
	userID uuid.UUID,
	isAdmin bool,
) (*entity.Transaction, error) {
	transaction, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != userID && !isAdmin {
		return nil, notFoundError()
	}

	return transaction, nil
}

func notFoundError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
