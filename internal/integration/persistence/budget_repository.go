package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	if err := r.db.WithContext(ctx).Create(model.BudgetFromEntity(budget)).Error; err != nil {
		return storeError("create budget", err)
	}
	return nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, storeError("find budget", result.Error)
	}
	return budgetModel.ToEntity(), nil
}

// FindByUserID retrieves budgets for a user, or every budget when userID is nil.
func (r *budgetRepository) FindByUserID(ctx context.Context, userID *uuid.UUID) ([]*entity.Budget, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var budgetModels []model.BudgetModel
	if err := query.Find(&budgetModels).Error; err != nil {
		return nil, storeError("list budgets", err)
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToEntity()
	}
	return budgets, nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	m := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"category":   m.Category,
			"amount":     m.Amount,
			"start_date": m.StartDate,
			"end_date":   m.EndDate,
			"updated_at": m.UpdatedAt,
		})
	if result.Error != nil {
		return storeError("update budget", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// Delete permanently removes a budget.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BudgetModel{})
	if result.Error != nil {
		return storeError("delete budget", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}
