// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// Request-level error codes raised before a use case runs.
const (
	codeInvalidParameter = "REQ-010001"
	codeInvalidBody      = "REQ-010002"
)

// statusForKind maps an error kind to its HTTP status.
func statusForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindConflict:
		return http.StatusConflict
	case domainerror.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorCode extracts the code and message of a coded domain error.
func errorCode(err error) (code, message string, ok bool) {
	var (
		txnErr    *domainerror.TransactionError
		budgetErr *domainerror.BudgetError
		goalErr   *domainerror.GoalError
		reportErr *domainerror.ReportError
	)
	switch {
	case errors.As(err, &txnErr):
		return string(txnErr.Code), txnErr.Message, true
	case errors.As(err, &budgetErr):
		return string(budgetErr.Code), budgetErr.Message, true
	case errors.As(err, &goalErr):
		return string(goalErr.Code), goalErr.Message, true
	case errors.As(err, &reportErr):
		return string(reportErr.Code), reportErr.Message, true
	}
	return "", "", false
}

// respondError writes err as an ErrorResponse with the status of its kind.
func respondError(ctx *gin.Context, err error) {
	kind := domainerror.KindOf(err)
	status := statusForKind(kind)

	switch kind {
	case domainerror.KindUnavailable:
		slog.Error("Store unavailable", "path", ctx.FullPath(), "error", err)
		ctx.JSON(status, dto.ErrorResponse{Error: "Service temporarily unavailable"})
		return
	case domainerror.KindInternal:
		slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(status, dto.ErrorResponse{Error: "An internal error occurred"})
		return
	}

	code, message, ok := errorCode(err)
	if !ok {
		message = err.Error()
	}
	ctx.JSON(status, dto.ErrorResponse{Error: message, Code: code})
}

// badRequest writes a 400 for malformed input.
func badRequest(ctx *gin.Context, code, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message, Code: code})
}
