// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type              string          `gorm:"type:varchar(10);not null;index"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category          string          `gorm:"type:varchar(100);not null;index"`
	Date              time.Time       `gorm:"not null;index"`
	Notes             string          `gorm:"type:text"`
	IsRecurring       bool            `gorm:"not null;default:false;index"`
	RecurrencePattern string          `gorm:"type:varchar(10);not null;default:'none'"`
	RecurrenceEndDate *time.Time
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`

	// Relationships (use Preload)
	Tags []TransactionTagModel `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionTagModel represents one tag of a transaction.
type TransactionTagModel struct {
	TransactionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tag           string    `gorm:"type:varchar(50);primaryKey;index"`
}

// TableName returns the table name for the TransactionTagModel.
func (TransactionTagModel) TableName() string {
	return "transaction_tags"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	tags := make([]string, len(m.Tags))
	for i, tag := range m.Tags {
		tags[i] = tag.Tag
	}

	var endDate *time.Time
	if m.RecurrenceEndDate != nil {
		end := m.RecurrenceEndDate.UTC()
		endDate = &end
	}

	return &entity.Transaction{
		ID:                m.ID,
		UserID:            m.UserID,
		Type:              entity.TransactionType(m.Type),
		Amount:            m.Amount,
		Category:          m.Category,
		Date:              m.Date.UTC(),
		Tags:              valueobject.NewTags(tags),
		Notes:             m.Notes,
		IsRecurring:       m.IsRecurring,
		RecurrencePattern: entity.RecurrencePattern(m.RecurrencePattern),
		RecurrenceEndDate: endDate,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                t.ID,
		UserID:            t.UserID,
		Type:              string(t.Type),
		Amount:            t.Amount,
		Category:          t.Category,
		Date:              t.Date.UTC(),
		Notes:             t.Notes,
		IsRecurring:       t.IsRecurring,
		RecurrencePattern: string(t.RecurrencePattern),
		RecurrenceEndDate: t.RecurrenceEndDate,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		Tags:              TagsFromEntity(t.ID, t.Tags),
	}
}

// TagsFromEntity builds the tag rows of a transaction.
func TagsFromEntity(transactionID uuid.UUID, tags valueobject.Tags) []TransactionTagModel {
	rows := make([]TransactionTagModel, len(tags))
	for i, tag := range tags {
		rows[i] = TransactionTagModel{TransactionID: transactionID, Tag: tag}
	}
	return rows
}
