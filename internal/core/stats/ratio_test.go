package stats

import (
	"testing"
)

func TestCostPerConversion(t *testing.T) {
	assertDecimal(t, "43.33", CostPerConversion(Totals{Cost: dec("130.00"), Conversions: 3}))
	assertDecimal(t, "0.13", CostPerConversion(Totals{Cost: dec("0.125"), Conversions: 1}))
	assertDecimal(t, "0", CostPerConversion(Totals{Cost: dec("130.00")}))
	assertDecimal(t, "0", CostPerConversion(Totals{}))
}

func TestConversionRate(t *testing.T) {
	assertDecimal(t, "10", ConversionRate(Totals{Conversions: 3, Clicks: 30}))
	assertDecimal(t, "33.33", ConversionRate(Totals{Conversions: 1, Clicks: 3}))
	assertDecimal(t, "66.67", ConversionRate(Totals{Conversions: 2, Clicks: 3}))
	assertDecimal(t, "0", ConversionRate(Totals{Conversions: 4}))
}

func TestROAS(t *testing.T) {
	assertDecimal(t, "2", ROAS(Totals{ConversionValue: dec("260"), Cost: dec("130.00")}))
	assertDecimal(t, "0.3333", ROAS(Totals{ConversionValue: dec("1"), Cost: dec("3")}))
	assertDecimal(t, "0", ROAS(Totals{ConversionValue: dec("10")}))
	assertDecimal(t, "0", ROAS(Totals{ConversionValue: dec("10"), Cost: dec("-1")}))
}

func TestEfficiency(t *testing.T) {
	assertDecimal(t, "3.33", Efficiency(dec("10"), 3))
	assertDecimal(t, "0", Efficiency(dec("10"), 0))
}
