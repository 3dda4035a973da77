package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OverallScope is the display name of a budget that covers every category.
const OverallScope = "overall"

var (
	nearingRatio = decimal.NewFromFloat(0.8)
	halfRatio    = decimal.NewFromFloat(0.5)
)

// BudgetLevel is the derived state of a budget against its spending.
type BudgetLevel string

const (
	BudgetLevelOK       BudgetLevel = "ok"
	BudgetLevelNearing  BudgetLevel = "nearing"
	BudgetLevelExceeded BudgetLevel = "exceeded"
)

// BudgetUsage is the advice tier used for recommendations.
// Its boundaries are strict, unlike BudgetLevel.
type BudgetUsage string

const (
	BudgetUsageUnderHalf BudgetUsage = "under_half"
	BudgetUsageOverHalf  BudgetUsage = "over_half"
	BudgetUsageExceeded  BudgetUsage = "exceeded"
)

// Budget is a spending ceiling for a user, optionally restricted to one category
// and to a date window.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  *string // nil means the budget covers all categories
	Amount    decimal.Decimal
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity. A nil start date defaults to now.
func NewBudget(userID uuid.UUID, category *string, amount decimal.Decimal, startDate, endDate *time.Time) *Budget {
	now := time.Now().UTC()
	if startDate == nil {
		start := now
		startDate = &start
	}

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Scope returns the category name or OverallScope.
func (b *Budget) Scope() string {
	if b.Category == nil {
		return OverallScope
	}
	return *b.Category
}

// LevelFor classifies spent against the budget: exceeded at or above the
// amount, nearing at or above 80% of it.
func (b *Budget) LevelFor(spent decimal.Decimal) BudgetLevel {
	switch {
	case spent.GreaterThanOrEqual(b.Amount):
		return BudgetLevelExceeded
	case spent.GreaterThanOrEqual(b.Amount.Mul(nearingRatio)):
		return BudgetLevelNearing
	default:
		return BudgetLevelOK
	}
}

// UsageFor classifies spent for recommendations: exceeded strictly above the
// amount, over half strictly above 50% of it.
func (b *Budget) UsageFor(spent decimal.Decimal) BudgetUsage {
	switch {
	case spent.GreaterThan(b.Amount):
		return BudgetUsageExceeded
	case spent.GreaterThan(b.Amount.Mul(halfRatio)):
		return BudgetUsageOverHalf
	default:
		return BudgetUsageUnderHalf
	}
}
