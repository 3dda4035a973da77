package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

var maxPercentage = decimal.NewFromInt(100)

// findOwned loads a goal and hides goals owned by other users.
func findOwned(ctx context.Context, repo adapter.GoalRepository, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, goalNotFound()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != userID {
		return nil, goalNotFound()
	}

	return goal, nil
}

func goalNotFound() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}

// validateGoal checks the stored invariants of a goal. The current amount is
// only required to be non-negative here; the target bound is enforced by the
// Allocator.
func validateGoal(g *entity.Goal) error {
	if strings.TrimSpace(g.Title) == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"title is required",
			domainerror.ErrMissingGoalFields,
		)
	}
	if !g.TargetAmount.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if g.CurrentAmount.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrInvalidCurrentAmount,
		)
	}
	if !entity.FitsCents(g.TargetAmount) || !entity.FitsCents(g.CurrentAmount) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"amounts must have at most two decimal places",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if g.AllocationPercentage.IsNegative() || g.AllocationPercentage.GreaterThan(maxPercentage) ||
		!entity.FitsCents(g.AllocationPercentage) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidAllocationPercentage,
			"allocation percentage must be between 0 and 100 with at most two decimal places",
			domainerror.ErrInvalidAllocationPercentage,
		)
	}
	return nil
}
