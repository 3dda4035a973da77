// Package error defines domain-specific errors for the ledger service.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found or not visible to the caller.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMissingTransactionFields is returned when type, amount or category is missing.
	ErrMissingTransactionFields = errors.New("missing required transaction fields")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrCategoryTooLong is returned when the category exceeds the maximum length.
	ErrCategoryTooLong = errors.New("category too long")

	// ErrNotesTooLong is returned when the transaction notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")

	// ErrInvalidRecurrencePattern is returned when the recurrence pattern is unknown or
	// inconsistent with the recurring flag.
	ErrInvalidRecurrencePattern = errors.New("invalid recurrence pattern")

	// ErrInvalidTags is returned when a tag list is empty or contains blank values.
	ErrInvalidTags = errors.New("invalid tags")

	// ErrInvalidDateRange is returned when a start date is after its end date.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeCategoryTooLong          TransactionErrorCode = "TXN-010004"
	ErrCodeNotesTooLong             TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidRecurrence        TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidTags              TransactionErrorCode = "TXN-010007"
	ErrCodeInvalidDateRange         TransactionErrorCode = "TXN-010008"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind derived from the code.
func (e *TransactionError) Kind() Kind {
	if e.Code == ErrCodeTransactionNotFound {
		return KindNotFound
	}
	return KindValidation
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
