package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportMonth is returned when the month is outside 1..12.
	ErrInvalidReportMonth = errors.New("invalid report month")

	// ErrInvalidReportYear is returned when the year is not a plausible calendar year.
	ErrInvalidReportYear = errors.New("invalid report year")

	// ErrInvalidReportBudget is returned when the monthly budget amount is negative.
	ErrInvalidReportBudget = errors.New("invalid report budget")

	// ErrInvalidReportRange is returned when the report start date is after its end date.
	ErrInvalidReportRange = errors.New("invalid report date range")

	// ErrUnsupportedExportFormat is returned when an export format has no writer.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportMonth      ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportYear       ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportBudget     ReportErrorCode = "RPT-010003"
	ErrCodeInvalidReportRange      ReportErrorCode = "RPT-010004"
	ErrCodeUnsupportedExportFormat ReportErrorCode = "RPT-010005"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind. Every report error is a validation failure.
func (e *ReportError) Kind() Kind {
	return KindValidation
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
