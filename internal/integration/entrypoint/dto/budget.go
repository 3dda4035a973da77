package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
// A missing category makes an overall budget.
type CreateBudgetRequest struct {
	Category  *string          `json:"category,omitempty"`
	Amount    *decimal.Decimal `json:"amount"`
	StartDate *string          `json:"start_date,omitempty"`
	EndDate   *string          `json:"end_date,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category      *string          `json:"category,omitempty"`
	ClearCategory bool             `json:"clear_category,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	StartDate     *string          `json:"start_date,omitempty"`
	EndDate       *string          `json:"end_date,omitempty"`
	ClearEndDate  bool             `json:"clear_end_date,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Category  *string   `json:"category"`
	Scope     string    `json:"scope"`
	Amount    string    `json:"amount"`
	StartDate *string   `json:"start_date,omitempty"`
	EndDate   *string   `json:"end_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetStatusResponse is a budget evaluated against the ledger.
type BudgetStatusResponse struct {
	BudgetResponse
	Spent     string `json:"spent"`
	Remaining string `json:"remaining"`
	Level     string `json:"level"`
}

// CheckStatusResponse represents the response of a budget status check.
type CheckStatusResponse struct {
	Alerts   []string               `json:"alerts"`
	Statuses []BudgetStatusResponse `json:"statuses"`
}

// RecommendationResponse represents one budget recommendation.
type RecommendationResponse struct {
	BudgetID string `json:"budget_id"`
	Scope    string `json:"scope"`
	Usage    string `json:"usage"`
	Message  string `json:"message"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		Category:  b.Category,
		Scope:     b.Scope(),
		Amount:    b.Amount.StringFixed(2),
		StartDate: formatDate(b.StartDate),
		EndDate:   formatDate(b.EndDate),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBudgetResponses converts a list of budgets.
func ToBudgetResponses(budgets []*entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return responses
}

// ToBudgetStatusResponse converts a BudgetOutput.
func ToBudgetStatusResponse(output *budget.BudgetOutput) BudgetStatusResponse {
	return BudgetStatusResponse{
		BudgetResponse: ToBudgetResponse(output.Budget),
		Spent:          output.Spent.StringFixed(2),
		Remaining:      output.Remaining.StringFixed(2),
		Level:          string(output.Level),
	}
}

// ToCheckStatusResponse converts a CheckStatusOutput.
func ToCheckStatusResponse(output *budget.CheckStatusOutput) CheckStatusResponse {
	statuses := make([]BudgetStatusResponse, len(output.Statuses))
	for i, s := range output.Statuses {
		statuses[i] = ToBudgetStatusResponse(s)
	}
	return CheckStatusResponse{
		Alerts:   output.Alerts,
		Statuses: statuses,
	}
}

// ToRecommendationResponses converts a RecommendOutput.
func ToRecommendationResponses(output *budget.RecommendOutput) []RecommendationResponse {
	responses := make([]RecommendationResponse, len(output.Recommendations))
	for i, r := range output.Recommendations {
		responses[i] = RecommendationResponse{
			BudgetID: r.BudgetID.String(),
			Scope:    r.Scope,
			Usage:    string(r.Usage),
			Message:  r.Message,
		}
	}
	return responses
}
