package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ad-metrics-hub/internal/core/domain"
)

type campaign struct {
	id     int64
	name   string
	status string
}

var (
	brand   = campaign{1, "Brand", domain.StatusEnabled}
	generic = campaign{2, "Generic", domain.StatusActive}
	paused  = campaign{3, "Retargeting", domain.StatusPaused}
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rec(c campaign, day string, impressions, clicks, conversions int64, cost string) domain.MetricRecord {
	return domain.MetricRecord{
		CampaignID:     c.id,
		CampaignName:   c.name,
		CampaignStatus: c.status,
		Date:           date(day),
		Impressions:    impressions,
		Clicks:         clicks,
		Conversions:    conversions,
		Cost:           dec(cost),
	}
}

func withValue(r domain.MetricRecord, value string) domain.MetricRecord {
	r.ConversionValue = dec(value)
	return r
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !dec(want).Equal(got) {
		t.Errorf("want %s, got %s %v", want, got, msgAndArgs)
	}
}

func assertDecimals(t *testing.T, want []string, got []decimal.Decimal) {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return
	}
	for i := range want {
		assertDecimal(t, want[i], got[i], "index %d", i)
	}
}
