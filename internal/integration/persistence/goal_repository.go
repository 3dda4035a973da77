package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	if err := r.db.WithContext(ctx).Create(model.GoalFromEntity(goal)).Error; err != nil {
		return storeError("create goal", err)
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, storeError("find goal", result.Error)
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all goals for a given user.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return r.find(ctx, "list goals", r.db.Where("user_id = ?", userID))
}

// FindAutoAllocateByUser retrieves the goals of a user that take a share of income.
func (r *goalRepository) FindAutoAllocateByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return r.find(ctx, "list auto-allocating goals", r.db.Where("user_id = ? AND auto_allocate = ?", userID, true))
}

func (r *goalRepository) find(ctx context.Context, op string, query *gorm.DB) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	if err := query.WithContext(ctx).Order("created_at ASC").Find(&goalModels).Error; err != nil {
		return nil, storeError(op, err)
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	m := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"title":                 m.Title,
			"target_amount":         m.TargetAmount,
			"current_amount":        m.CurrentAmount,
			"deadline":              m.Deadline,
			"auto_allocate":         m.AutoAllocate,
			"allocation_percentage": m.AllocationPercentage,
			"updated_at":            m.UpdatedAt,
		})
	if result.Error != nil {
		return storeError("update goal", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// Delete permanently removes a goal.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GoalModel{})
	if result.Error != nil {
		return storeError("delete goal", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// AllocateBounded re-reads the goal under a row lock and adds share only when
// the new amount stays within the target. The bound is checked in decimal and
// the absolute amount is written, so no driver arithmetic touches the value.
func (r *goalRepository) AllocateBounded(ctx context.Context, id uuid.UUID, share decimal.Decimal) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		// SQLite has no row locks; its writers are already serialized.
		if tx.Dialector.Name() != "sqlite" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var goalModel model.GoalModel
		if err := query.Where("id = ?", id).First(&goalModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		goal := goalModel.ToEntity()
		goal.CurrentAmount = goal.CurrentAmount.Round(2)
		if !goal.CanAbsorb(share) {
			return nil
		}

		result := tx.Model(&model.GoalModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"current_amount": goal.CurrentAmount.Add(share).StringFixed(2),
				"updated_at":     time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		applied = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, storeError("allocate to goal", err)
	}
	return applied, nil
}
