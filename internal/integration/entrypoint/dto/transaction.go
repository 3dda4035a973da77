package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/recurrence"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Dates accept RFC3339 or YYYY-MM-DD.
type CreateTransactionRequest struct {
	Type              string           `json:"type" binding:"required"`
	Amount            *decimal.Decimal `json:"amount"`
	Category          string           `json:"category"`
	Date              *string          `json:"date,omitempty"`
	Tags              []string         `json:"tags,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	IsRecurring       bool             `json:"is_recurring,omitempty"`
	RecurrencePattern string           `json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate *string          `json:"recurrence_end_date,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	Type              *string          `json:"type,omitempty"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
	Category          *string          `json:"category,omitempty"`
	Date              *string          `json:"date,omitempty"`
	Tags              *[]string        `json:"tags,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
	IsRecurring       *bool            `json:"is_recurring,omitempty"`
	RecurrencePattern *string          `json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate *string          `json:"recurrence_end_date,omitempty"`
	ClearEndDate      bool             `json:"clear_recurrence_end_date,omitempty"`
}

// UpdateTagsRequest represents the request body for replacing tags.
type UpdateTagsRequest struct {
	Tags []string `json:"tags"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	Type              string     `json:"type"`
	Amount            string     `json:"amount"`
	Category          string     `json:"category"`
	Date              time.Time  `json:"date"`
	Tags              []string   `json:"tags"`
	Notes             string     `json:"notes"`
	IsRecurring       bool       `json:"is_recurring"`
	RecurrencePattern string     `json:"recurrence_pattern"`
	RecurrenceEndDate *time.Time `json:"recurrence_end_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TransactionTotalsResponse represents summary totals for a listing.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse    `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// CreateTransactionResponse carries the stored transaction and, if goal
// allocation failed afterwards, a description of the failure.
type CreateTransactionResponse struct {
	Transaction     TransactionResponse `json:"transaction"`
	AllocationError string              `json:"allocation_error,omitempty"`
}

// NotificationsResponse lists recurring transactions around now.
type NotificationsResponse struct {
	Missed   []TransactionResponse `json:"missed"`
	Upcoming []TransactionResponse `json:"upcoming"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	tags := output.Tags
	if tags == nil {
		tags = []string{}
	}
	return TransactionResponse{
		ID:                output.ID.String(),
		UserID:            output.UserID.String(),
		Type:              string(output.Type),
		Amount:            output.Amount.StringFixed(2),
		Category:          output.Category,
		Date:              output.Date,
		Tags:              tags,
		Notes:             output.Notes,
		IsRecurring:       output.IsRecurring,
		RecurrencePattern: string(output.RecurrencePattern),
		RecurrenceEndDate: output.RecurrenceEndDate,
		CreatedAt:         output.CreatedAt,
		UpdatedAt:         output.UpdatedAt,
	}
}

// ToTransactionResponses converts a list of outputs.
func ToTransactionResponses(outputs []*transaction.TransactionOutput) []TransactionResponse {
	responses := make([]TransactionResponse, len(outputs))
	for i, o := range outputs {
		responses[i] = ToTransactionResponse(o)
	}
	return responses
}

// ToTransactionListResponse converts a ListTransactionsOutput.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Totals: TransactionTotalsResponse{
			IncomeTotal:  output.Totals.IncomeTotal.StringFixed(2),
			ExpenseTotal: output.Totals.ExpenseTotal.StringFixed(2),
			NetTotal:     output.Totals.NetTotal.StringFixed(2),
		},
	}
}

// ToNotificationsResponse converts a ClassifyOutput.
func ToNotificationsResponse(output *recurrence.ClassifyOutput) NotificationsResponse {
	return NotificationsResponse{
		Missed:   ToTransactionResponses(output.Missed),
		Upcoming: ToTransactionResponses(output.Upcoming),
	}
}
