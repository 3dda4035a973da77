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
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID               uuid.UUID
	Title                string
	TargetAmount         *decimal.Decimal // Required
	CurrentAmount        *decimal.Decimal // Optional, defaults to zero
	Deadline             *time.Time
	AutoAllocate         bool
	AllocationPercentage *decimal.Decimal // Optional, defaults to zero
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.TargetAmount == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"title and target amount are required",
			domainerror.ErrMissingGoalFields,
		)
	}

	goal := entity.NewGoal(input.UserID, title, *input.TargetAmount, input.Deadline)
	goal.AutoAllocate = input.AutoAllocate
	if input.CurrentAmount != nil {
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.AllocationPercentage != nil {
		goal.AllocationPercentage = *input.AllocationPercentage
	}

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
