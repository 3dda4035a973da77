package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetPeriod is returned when the start date is after the end date.
	ErrInvalidBudgetPeriod = errors.New("budget start date must not be after end date")

	// ErrInvalidBudgetCategory is returned when a category is given but blank.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BUD-010003"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BUD-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind derived from the code.
func (e *BudgetError) Kind() Kind {
	if e.Code == ErrCodeBudgetNotFound {
		return KindNotFound
	}
	return KindValidation
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
