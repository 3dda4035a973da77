package entity

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodLayout formats a calendar month key, for example "2025-03".
const PeriodLayout = "2006-01"

// Totals holds income and expense sums over a set of transactions.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Balance returns income minus expenses.
func (t Totals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// Summarize sums income and expense amounts separately.
func Summarize(transactions []*Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range transactions {
		switch t.Type {
		case TransactionTypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}
	return totals
}

// MonthlySpending is the expense total of one calendar month.
type MonthlySpending struct {
	Period     string // "YYYY-MM"
	TotalSpent decimal.Decimal
}

// SpendingByMonth groups expense amounts by calendar month (year and month),
// returned in ascending period order. Income is ignored.
func SpendingByMonth(transactions []*Transaction) []MonthlySpending {
	sums := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		key := t.Date.UTC().Format(PeriodLayout)
		sums[key] = sums[key].Add(t.Amount)
	}

	trends := make([]MonthlySpending, 0, len(sums))
	for period, total := range sums {
		trends = append(trends, MonthlySpending{Period: period, TotalSpent: total})
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Period < trends[j].Period
	})
	return trends
}

// MonthBounds returns the first and last instant of a calendar month in UTC.
// Month is 1-indexed.
func MonthBounds(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
