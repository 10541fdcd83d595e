package stats

import (
	"testing"
)

func TestPercentChangeOfEqualValuesIsZero(t *testing.T) {
	for _, v := range []string{"0", "1", "0.01", "130.4567", "999999.99"} {
		assertDecimal(t, "0", PercentChange(dec(v), dec(v)), v)
	}
}

func TestPercentChangeZeroBaseline(t *testing.T) {
	assertDecimal(t, "0", PercentChange(dec("0"), dec("0")))
	assertDecimal(t, "100", PercentChange(dec("5"), dec("0")))
	assertDecimal(t, "100", PercentChange(dec("0.01"), dec("0")))
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		current, previous, want string
	}{
		{"0", "5", "-100"},
		{"150", "100", "50"},
		{"1", "3", "-66.67"},
		{"2", "3", "-33.33"},
		{"4", "3", "33.33"},
		{"43.33", "40.00", "8.33"},
	}
	for _, tt := range tests {
		assertDecimal(t, tt.want, PercentChange(dec(tt.current), dec(tt.previous)), "%s vs %s", tt.current, tt.previous)
	}
}

func TestCountChange(t *testing.T) {
	assertDecimal(t, "100", CountChange(5, 0))
	assertDecimal(t, "-100", CountChange(0, 5))
	assertDecimal(t, "0", CountChange(0, 0))
	assertDecimal(t, "200", CountChange(300, 100))
}
