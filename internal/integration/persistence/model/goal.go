package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title                string          `gorm:"type:varchar(255);not null"`
	TargetAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Deadline             *time.Time
	AutoAllocate         bool            `gorm:"not null;default:false;index"`
	AllocationPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	CreatedAt            time.Time       `gorm:"not null"`
	UpdatedAt            time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var deadline *time.Time
	if m.Deadline != nil {
		d := m.Deadline.UTC()
		deadline = &d
	}

	return &entity.Goal{
		ID:                   m.ID,
		UserID:               m.UserID,
		Title:                m.Title,
		TargetAmount:         m.TargetAmount,
		CurrentAmount:        m.CurrentAmount,
		Deadline:             deadline,
		AutoAllocate:         m.AutoAllocate,
		AllocationPercentage: m.AllocationPercentage,
		CreatedAt:            m.CreatedAt.UTC(),
		UpdatedAt:            m.UpdatedAt.UTC(),
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:                   goal.ID,
		UserID:               goal.UserID,
		Title:                goal.Title,
		TargetAmount:         goal.TargetAmount,
		CurrentAmount:        goal.CurrentAmount,
		Deadline:             goal.Deadline,
		AutoAllocate:         goal.AutoAllocate,
		AllocationPercentage: goal.AllocationPercentage,
		CreatedAt:            goal.CreatedAt,
		UpdatedAt:            goal.UpdatedAt,
	}
}
