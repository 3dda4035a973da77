// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID               uuid.UUID
	UserID               uuid.UUID
	Title                *string          // Optional
	TargetAmount         *decimal.Decimal // Optional
	CurrentAmount        *decimal.Decimal // Optional, not bounded by the target
	Deadline             *time.Time       // Optional
	ClearDeadline        bool
	AutoAllocate         *bool            // Optional
	AllocationPercentage *decimal.Decimal // Optional
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	// Find the existing goal
	goal, err := findOwned(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		goal.Title = strings.TrimSpace(*input.Title)
	}
	if input.TargetAmount != nil {
		goal.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.Deadline != nil {
		goal.Deadline = input.Deadline
	}
	if input.ClearDeadline {
		goal.Deadline = nil
	}
	if input.AutoAllocate != nil {
		goal.AutoAllocate = *input.AutoAllocate
	}
	if input.AllocationPercentage != nil {
		goal.AllocationPercentage = *input.AllocationPercentage
	}

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	// Update timestamp
	goal.UpdatedAt = time.Now().UTC()

	// Save updated goal
	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
