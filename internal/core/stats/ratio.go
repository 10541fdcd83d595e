package stats

import "github.com/shopspring/decimal"

// Fractional digits of derived values. Division rounds half away from zero.
const (
	CurrencyScale int32 = 2
	RateScale     int32 = 4
)

var hundred = decimal.NewFromInt(100)

// CostPer divides cost by a count, returning zero for a zero count.
func CostPer(cost decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return cost.DivRound(decimal.NewFromInt(count), CurrencyScale)
}

// CostPerConversion is cost / conversions, zero without conversions.
func CostPerConversion(t Totals) decimal.Decimal {
	return CostPer(t.Cost, t.Conversions)
}

// ConversionRate is conversions / clicks * 100, zero without clicks.
func ConversionRate(t Totals) decimal.Decimal {
	if t.Clicks == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(t.Conversions).
		DivRound(decimal.NewFromInt(t.Clicks), RateScale).
		Mul(hundred)
}

// ROAS is conversion value / cost, zero when nothing was spent.
func ROAS(t Totals) decimal.Decimal {
	if !t.Cost.IsPositive() {
		return decimal.Zero
	}
	return t.ConversionValue.DivRound(t.Cost, RateScale)
}
