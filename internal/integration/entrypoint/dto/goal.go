package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title                string           `json:"title" binding:"required,min=1,max=255"`
	TargetAmount         *decimal.Decimal `json:"target_amount"`
	CurrentAmount        *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline             *string          `json:"deadline,omitempty"`
	AutoAllocate         bool             `json:"auto_allocate,omitempty"`
	AllocationPercentage *decimal.Decimal `json:"allocation_percentage,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title                *string          `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	TargetAmount         *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount        *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline             *string          `json:"deadline,omitempty"`
	ClearDeadline        bool             `json:"clear_deadline,omitempty"`
	AutoAllocate         *bool            `json:"auto_allocate,omitempty"`
	AllocationPercentage *decimal.Decimal `json:"allocation_percentage,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	Title                string    `json:"title"`
	TargetAmount         string    `json:"target_amount"`
	CurrentAmount        string    `json:"current_amount"`
	Deadline             *string   `json:"deadline,omitempty"`
	AutoAllocate         bool      `json:"auto_allocate"`
	AllocationPercentage string    `json:"allocation_percentage"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// GoalProgressResponse represents the savings progress of one goal.
type GoalProgressResponse struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	TargetAmount         string  `json:"target_amount"`
	CurrentAmount        string  `json:"current_amount"`
	PercentageSaved      string  `json:"percentage_saved"`
	Deadline             *string `json:"deadline,omitempty"`
	Status               string  `json:"status"`
	AutoAllocate         bool    `json:"auto_allocate"`
	AllocationPercentage string  `json:"allocation_percentage"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dateLayout)
	return &s
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:                   g.ID.String(),
		UserID:               g.UserID.String(),
		Title:                g.Title,
		TargetAmount:         g.TargetAmount.StringFixed(2),
		CurrentAmount:        g.CurrentAmount.StringFixed(2),
		Deadline:             formatDate(g.Deadline),
		AutoAllocate:         g.AutoAllocate,
		AllocationPercentage: g.AllocationPercentage.StringFixed(2),
		CreatedAt:            g.CreatedAt,
		UpdatedAt:            g.UpdatedAt,
	}
}

// ToGoalResponses converts a list of goals.
func ToGoalResponses(goals []*entity.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return responses
}

// ToGoalProgressResponses converts a TrackProgressOutput.
func ToGoalProgressResponses(output *goal.TrackProgressOutput) []GoalProgressResponse {
	responses := make([]GoalProgressResponse, len(output.Goals))
	for i, p := range output.Goals {
		responses[i] = GoalProgressResponse{
			ID:                   p.GoalID.String(),
			Title:                p.Title,
			TargetAmount:         p.TargetAmount.StringFixed(2),
			CurrentAmount:        p.CurrentAmount.StringFixed(2),
			PercentageSaved:      p.PercentageSaved,
			Deadline:             formatDate(p.Deadline),
			Status:               p.Status,
			AutoAllocate:         p.AutoAllocate,
			AllocationPercentage: p.AllocationPercentage.StringFixed(2),
		}
	}
	return responses
}
