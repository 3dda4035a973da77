// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Goal represents a savings target that can receive a share of incoming income.
type Goal struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Title                string
	TargetAmount         decimal.Decimal
	CurrentAmount        decimal.Decimal
	Deadline             *time.Time
	AutoAllocate         bool
	AllocationPercentage decimal.Decimal // 0 to 100
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewGoal creates a new Goal entity with nothing saved yet.
func NewGoal(userID uuid.UUID, title string, targetAmount decimal.Decimal, deadline *time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:                   uuid.New(),
		UserID:               userID,
		Title:                title,
		TargetAmount:         targetAmount,
		CurrentAmount:        decimal.Zero,
		Deadline:             deadline,
		AllocationPercentage: decimal.Zero,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// ShareOf returns the part of an income amount this goal claims, rounded to cents.
func (g *Goal) ShareOf(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(g.AllocationPercentage).Div(hundred).Round(2)
}

// CanAbsorb reports whether adding share keeps the goal at or below its target.
func (g *Goal) CanAbsorb(share decimal.Decimal) bool {
	return g.CurrentAmount.Add(share).LessThanOrEqual(g.TargetAmount)
}

// IsAchieved reports whether the saved amount has reached the target.
func (g *Goal) IsAchieved() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// PercentageSaved returns current/target as a percentage with two decimals.
func (g *Goal) PercentageSaved() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(hundred).Round(2)
}
