package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// Progress statuses reported for each goal.
const (
	StatusAchieved   = "Goal Achieved"
	StatusInProgress = "In Progress"
)

// TrackProgressInput represents the input for savings progress.
type TrackProgressInput struct {
	UserID uuid.UUID
}

// GoalProgress summarizes how far one goal has come.
type GoalProgress struct {
	GoalID               uuid.UUID
	Title                string
	TargetAmount         decimal.Decimal
	CurrentAmount        decimal.Decimal
	PercentageSaved      string // "NN.NN%"
	Deadline             *time.Time
	Status               string
	AutoAllocate         bool
	AllocationPercentage decimal.Decimal
}

// TrackProgressOutput represents the output of savings progress.
type TrackProgressOutput struct {
	Goals []GoalProgress
}

// TrackProgressUseCase reports savings progress for every goal of a user.
type TrackProgressUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewTrackProgressUseCase creates a new TrackProgressUseCase instance.
func NewTrackProgressUseCase(goalRepo adapter.GoalRepository) *TrackProgressUseCase {
	return &TrackProgressUseCase{
		goalRepo: goalRepo,
	}
}

// Execute computes the progress list.
func (uc *TrackProgressUseCase) Execute(ctx context.Context, input TrackProgressInput) (*TrackProgressOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	progress := make([]GoalProgress, len(goals))
	for i, g := range goals {
		status := StatusInProgress
		if g.IsAchieved() {
			status = StatusAchieved
		}
		progress[i] = GoalProgress{
			GoalID:               g.ID,
			Title:                g.Title,
			TargetAmount:         g.TargetAmount,
			CurrentAmount:        g.CurrentAmount,
			PercentageSaved:      g.PercentageSaved().StringFixed(2) + "%",
			Deadline:             g.Deadline,
			Status:               status,
			AutoAllocate:         g.AutoAllocate,
			AllocationPercentage: g.AllocationPercentage,
		}
	}

	return &TrackProgressOutput{Goals: progress}, nil
}
