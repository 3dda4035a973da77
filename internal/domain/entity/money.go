package entity

import "github.com/shopspring/decimal"

// CentScale is the number of decimal places stored for money and percentages.
const CentScale = 2

// FitsCents reports whether d is representable with at most two decimal places.
func FitsCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(CentScale))
}
