// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindAutoAllocateByUser retrieves the goals of a user that take a share of income.
	FindAutoAllocateByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete permanently removes a goal.
	Delete(ctx context.Context, id uuid.UUID) error

	// AllocateBounded atomically adds share to the goal's current amount only if
	// the result stays at or below the target. It reports whether the row changed.
	AllocateBounded(ctx context.Context, id uuid.UUID, share decimal.Decimal) (bool, error)
}
