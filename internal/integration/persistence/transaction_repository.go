// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// storeError marks a persistence failure as unavailable.
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domainerror.ErrStoreUnavailable, op, err)
}

func preloadTags(db *gorm.DB) *gorm.DB {
	return db.Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("tag ASC")
	})
}

// Create creates a new transaction and its tags in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	if err := r.db.WithContext(ctx).Create(transactionModel).Error; err != nil {
		return storeError("create transaction", err)
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := preloadTags(r.db.WithContext(ctx)).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, storeError("find transaction", result.Error)
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions based on filter criteria.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, order adapter.SortOrder) ([]*entity.Transaction, error) {
	query := preloadTags(r.db.WithContext(ctx)).Model(&model.TransactionModel{})

	// Apply filters
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate.UTC())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.IsRecurring != nil {
		query = query.Where("is_recurring = ?", *filter.IsRecurring)
	}
	if tags := valueobject.NewTags(filter.Tags); len(tags) > 0 {
		query = query.Where("id IN (SELECT transaction_id FROM transaction_tags WHERE tag IN ?)", tags.Strings())
	}

	if order == adapter.SortDateAsc {
		query = query.Order("date ASC, created_at ASC")
	} else {
		query = query.Order("date DESC, created_at DESC")
	}

	var transactionModels []model.TransactionModel
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, storeError("list transactions", err)
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// Update updates every column of an existing transaction and replaces its tags.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	m := model.TransactionFromEntity(transaction)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TransactionModel{}).
			Where("id = ?", m.ID).
			Updates(map[string]any{
				"type":                m.Type,
				"amount":              m.Amount,
				"category":            m.Category,
				"date":                m.Date,
				"notes":               m.Notes,
				"is_recurring":        m.IsRecurring,
				"recurrence_pattern":  m.RecurrencePattern,
				"recurrence_end_date": m.RecurrenceEndDate,
				"updated_at":          m.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return replaceTags(tx, m.ID, m.Tags)
	})
	return translate("update transaction", err)
}

// ReplaceTags swaps the tag set of a transaction wholesale.
func (r *transactionRepository) ReplaceTags(ctx context.Context, id uuid.UUID, tags valueobject.Tags, updatedAt time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TransactionModel{}).
			Where("id = ?", id).
			Update("updated_at", updatedAt.UTC())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return replaceTags(tx, id, model.TagsFromEntity(id, tags))
	})
	return translate("replace tags", err)
}

// Delete permanently removes a transaction and its tags.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).Delete(&model.TransactionTagModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.TransactionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return nil
	})
	return translate("delete transaction", err)
}

func replaceTags(tx *gorm.DB, id uuid.UUID, rows []model.TransactionTagModel) error {
	if err := tx.Where("transaction_id = ?", id).Delete(&model.TransactionTagModel{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// translate keeps domain sentinels and wraps everything else as a store failure.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domainerror.ErrTransactionNotFound),
		errors.Is(err, domainerror.ErrGoalNotFound),
		errors.Is(err, domainerror.ErrBudgetNotFound):
		return err
	default:
		return storeError(op, err)
	}
}
