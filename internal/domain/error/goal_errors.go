// Package error defines domain-specific errors for the ledger service.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrMissingGoalFields is returned when the title or target amount is missing.
	ErrMissingGoalFields = errors.New("missing required goal fields")

	// ErrInvalidTargetAmount is returned when the target amount is not positive.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidCurrentAmount is returned when the saved amount is negative.
	ErrInvalidCurrentAmount = errors.New("invalid current amount")

	// ErrInvalidAllocationPercentage is returned when the percentage is outside 0..100.
	ErrInvalidAllocationPercentage = errors.New("invalid allocation percentage")

	// ErrGoalAllocationConflict is returned when a concurrent allocation filled the goal first.
	ErrGoalAllocationConflict = errors.New("goal allocation conflict")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingGoalFields           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount         GoalErrorCode = "GOL-010002"
	ErrCodeInvalidCurrentAmount        GoalErrorCode = "GOL-010003"
	ErrCodeInvalidAllocationPercentage GoalErrorCode = "GOL-010004"

	// Lookup errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"

	// Allocation errors (03XXXX)
	ErrCodeGoalAllocationConflict GoalErrorCode = "GOL-030001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind derived from the code.
func (e *GoalError) Kind() Kind {
	switch e.Code {
	case ErrCodeGoalNotFound:
		return KindNotFound
	case ErrCodeGoalAllocationConflict:
		return KindConflict
	default:
		return KindValidation
	}
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
