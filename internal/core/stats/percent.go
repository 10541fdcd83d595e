package stats

import "github.com/shopspring/decimal"

// PercentChange is (current - previous) / previous * 100 with the quotient
// rounded to RateScale digits. With a zero previous value the result is 0
// when current is also zero and the sentinel 100 otherwise; 100 then means
// growth from nothing, not an exact percentage.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).DivRound(previous, RateScale).Mul(hundred)
}

// CountChange is PercentChange for integer counters.
func CountChange(current, previous int64) decimal.Decimal {
	return PercentChange(decimal.NewFromInt(current), decimal.NewFromInt(previous))
}
