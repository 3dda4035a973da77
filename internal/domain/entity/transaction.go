// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the type is one of the known variants.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// RecurrencePattern describes how often a recurring transaction repeats.
type RecurrencePattern string

const (
	RecurrenceNone    RecurrencePattern = "none"
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
)

// IsValid reports whether the pattern is one of the known variants.
func (p RecurrencePattern) IsValid() bool {
	switch p {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Transaction represents a single income or expense entry in a user's ledger.
type Transaction struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Type              TransactionType
	Amount            decimal.Decimal // Always positive, the sign lives in Type
	Category          string
	Date              time.Time
	Tags              valueobject.Tags
	Notes             string
	IsRecurring       bool
	RecurrencePattern RecurrencePattern
	RecurrenceEndDate *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewTransaction creates a new Transaction entity.
// A zero date defaults to the creation instant.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	date time.Time,
	tags valueobject.Tags,
	notes string,
) *Transaction {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}
	if tags == nil {
		tags = valueobject.Tags{}
	}

	return &Transaction{
		ID:                uuid.New(),
		UserID:            userID,
		Type:              transactionType,
		Amount:            amount,
		Category:          category,
		Date:              date.UTC(),
		Tags:              tags,
		Notes:             notes,
		RecurrencePattern: RecurrenceNone,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// SetRecurrence marks the transaction as recurring with the given pattern.
// Passing RecurrenceNone clears the recurrence.
func (t *Transaction) SetRecurrence(pattern RecurrencePattern, endDate *time.Time) {
	if pattern == "" || pattern == RecurrenceNone {
		t.IsRecurring = false
		t.RecurrencePattern = RecurrenceNone
		t.RecurrenceEndDate = nil
		return
	}
	t.IsRecurring = true
	t.RecurrencePattern = pattern
	if endDate != nil {
		end := endDate.UTC()
		t.RecurrenceEndDate = &end
	} else {
		t.RecurrenceEndDate = nil
	}
}

// IsIncome reports whether the transaction adds money to the ledger.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction removes money from the ledger.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsActiveRecurringAt reports whether the transaction is recurring and its
// recurrence has not ended at the given instant.
func (t *Transaction) IsActiveRecurringAt(now time.Time) bool {
	if !t.IsRecurring {
		return false
	}
	return t.RecurrenceEndDate == nil || t.RecurrenceEndDate.After(now)
}
