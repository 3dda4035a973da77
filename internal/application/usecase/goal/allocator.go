// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/event"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// AllocationResult lists what happened to each auto-allocating goal.
type AllocationResult struct {
	Applied []GoalShare
	Skipped []GoalShare // share would overshoot the target, or is zero
}

// GoalShare is the amount one goal was offered from an income transaction.
type GoalShare struct {
	GoalID uuid.UUID
	Share  decimal.Decimal
}

// Allocator moves a percentage of every income transaction into the owner's
// auto-allocating goals. Each goal is handled on its own: a share that would
// push a goal past its target is skipped entirely, never partially applied.
type Allocator struct {
	goalRepo adapter.GoalRepository
}

// NewAllocator creates a new Allocator instance.
func NewAllocator(goalRepo adapter.GoalRepository) *Allocator {
	return &Allocator{
		goalRepo: goalRepo,
	}
}

// Handle implements event.Handler.
func (a *Allocator) Handle(ctx context.Context, evt event.TransactionRecorded) error {
	_, err := a.Allocate(ctx, evt.Transaction)
	return err
}

// Allocate applies the transaction to the owner's goals. Expenses and
// non-positive amounts are ignored.
func (a *Allocator) Allocate(ctx context.Context, transaction *entity.Transaction) (*AllocationResult, error) {
	result := &AllocationResult{}
	if transaction == nil || !transaction.IsIncome() || !transaction.Amount.IsPositive() {
		return result, nil
	}

	goals, err := a.goalRepo.FindAutoAllocateByUser(ctx, transaction.UserID)
	if err != nil {
		return result, fmt.Errorf("failed to load auto-allocate goals: %w", err)
	}

	var errs []error
	for _, g := range goals {
		share := g.ShareOf(transaction.Amount)
		offered := GoalShare{GoalID: g.ID, Share: share}

		if !share.IsPositive() || !g.CanAbsorb(share) {
			slog.Debug("Skipping goal allocation",
				"goal_id", g.ID,
				"share", share.String(),
				"current", g.CurrentAmount.String(),
				"target", g.TargetAmount.String(),
			)
			result.Skipped = append(result.Skipped, offered)
			continue
		}

		applied, err := a.goalRepo.AllocateBounded(ctx, g.ID, share)
		if err != nil {
			errs = append(errs, fmt.Errorf("goal %s: %w", g.ID, err))
			continue
		}
		if !applied {
			// Another allocation reached the goal between our read and write
			result.Skipped = append(result.Skipped, offered)
			errs = append(errs, domainerror.NewGoalError(
				domainerror.ErrCodeGoalAllocationConflict,
				fmt.Sprintf("goal %s was filled by a concurrent allocation", g.ID),
				domainerror.ErrGoalAllocationConflict,
			))
			continue
		}

		result.Applied = append(result.Applied, offered)
	}

	return result, errors.Join(errs...)
}
