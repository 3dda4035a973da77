package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/report"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

const dateOnlyLayout = "2006-01-02"

// parseDate accepts RFC3339 or YYYY-MM-DD. A date-only value used as an upper
// bound covers the whole day.
func parseDate(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use RFC3339 or YYYY-MM-DD", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// parseOptionalDate parses a pointer value; nil stays nil.
func parseOptionalDate(raw *string, endOfDay bool) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := parseDate(*raw, endOfDay)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// queryDate reads an optional date query parameter.
func queryDate(ctx *gin.Context, name string, endOfDay bool) (*time.Time, error) {
	raw, ok := ctx.GetQuery(name)
	if !ok {
		return nil, nil
	}
	return parseOptionalDate(&raw, endOfDay)
}

// queryTags splits a comma-separated tag list.
func queryTags(ctx *gin.Context) []string {
	raw := ctx.Query("tags")
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// queryOrder reads order=asc|desc, defaulting to desc.
func queryOrder(ctx *gin.Context) (adapter.SortOrder, error) {
	switch strings.ToLower(ctx.DefaultQuery("order", string(adapter.SortDateDesc))) {
	case "desc":
		return adapter.SortDateDesc, nil
	case "asc":
		return adapter.SortDateAsc, nil
	default:
		return "", fmt.Errorf("order must be asc or desc")
	}
}

// queryBool reads an optional true/false parameter.
func queryBool(ctx *gin.Context, name string) (*bool, error) {
	raw, ok := ctx.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", name)
	}
	return &v, nil
}

// queryString reads an optional non-blank string parameter.
func queryString(ctx *gin.Context, name string) *string {
	raw := strings.TrimSpace(ctx.Query(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// callerScope builds the ledger scope from the authenticated caller and the
// admin-only user_id and all parameters.
func callerScope(ctx *gin.Context) (transaction.Scope, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)
	scope := transaction.Scope{
		UserID:  userID,
		IsAdmin: middleware.GetIsAdminFromContext(ctx),
	}

	if raw := ctx.Query("user_id"); raw != "" {
		owner, err := uuid.Parse(raw)
		if err != nil {
			return scope, fmt.Errorf("invalid user_id")
		}
		scope.OwnerID = &owner
	}
	all, err := queryBool(ctx, "all")
	if err != nil {
		return scope, err
	}
	scope.AllUsers = all != nil && *all
	return scope, nil
}

// reportFilter reads the shared report filter parameters.
func reportFilter(ctx *gin.Context) (report.Filter, error) {
	scope, err := callerScope(ctx)
	if err != nil {
		return report.Filter{}, err
	}
	start, err := queryDate(ctx, "start_date", false)
	if err != nil {
		return report.Filter{}, err
	}
	end, err := queryDate(ctx, "end_date", true)
	if err != nil {
		return report.Filter{}, err
	}
	return report.Filter{
		Scope:     scope,
		StartDate: start,
		EndDate:   end,
		Category:  queryString(ctx, "category"),
		Tags:      queryTags(ctx),
	}, nil
}

// requireUser returns the caller's ID or writes a 401.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id parameter or writes a 400.
func pathID(ctx *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, codeInvalidParameter, "Invalid "+what+" ID format")
		return uuid.Nil, false
	}
	return id, true
}
