package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-metrics-hub/internal/core/domain"
)

var daily = Query{Granularity: domain.GranularityDay}

func TestWidgetTwoDayExample(t *testing.T) {
	current := []domain.MetricRecord{
		rec(brand, "2025-01-01", 100, 10, 1, "50.00"),
		rec(brand, "2025-01-02", 200, 20, 2, "80.00"),
	}

	got := Widget(daily, current, nil)

	assert.Equal(t, int64(300), got.Impressions.Total)
	assert.Equal(t, []string{"2025-01-01", "2025-01-02"}, got.Impressions.Labels)
	assert.Equal(t, []int64{100, 200}, got.Impressions.Values)
	assert.Equal(t, int64(30), got.Clicks.Total)
	assert.Equal(t, int64(3), got.Conversions.Total)

	assertDecimal(t, "130.00", got.Cost.Total)
	assertDecimals(t, []string{"50", "80"}, got.Cost.Values)

	assertDecimal(t, "43.33", got.CostPerConversion.Total)
	assertDecimals(t, []string{"50", "40"}, got.CostPerConversion.Values)

	assertDecimal(t, "10", got.ConversionRate.Total)
	assertDecimals(t, []string{"10", "10"}, got.ConversionRate.Values)

	// Nothing in the prior window: growth from zero.
	assertDecimal(t, "100", got.Impressions.PercentChange)
	assertDecimal(t, "100", got.Cost.PercentChange)
}

func TestWidgetComparesAgainstPrior(t *testing.T) {
	current := []domain.MetricRecord{
		withValue(rec(brand, "2025-01-08", 300, 30, 3, "60.00"), "120.00"),
	}
	prior := []domain.MetricRecord{
		withValue(rec(brand, "2025-01-01", 100, 40, 2, "40.00"), "40.00"),
		rec(generic, "2025-01-02", 100, 10, 0, "10.00"),
	}

	got := Widget(daily, current, prior)

	assertDecimal(t, "50", got.Impressions.PercentChange)
	assertDecimal(t, "-40", got.Clicks.PercentChange)
	assertDecimal(t, "50", got.Conversions.PercentChange)
	assertDecimal(t, "20", got.Cost.PercentChange)
	// cost per conversion 20.00 vs 25.00
	assertDecimal(t, "-20", got.CostPerConversion.PercentChange)
	// conversion rate 10 vs 4
	assertDecimal(t, "150", got.ConversionRate.PercentChange)
	// roas 2 vs 0.8
	assertDecimal(t, "2", got.ROAS.Total)
	assertDecimal(t, "150", got.ROAS.PercentChange)
}

func TestWidgetBucketValuesSumToTotal(t *testing.T) {
	current := []domain.MetricRecord{
		rec(brand, "2025-01-01", 7, 3, 1, "1.11"),
		rec(generic, "2025-01-01", 5, 2, 0, "2.22"),
		rec(brand, "2025-01-09", 11, 4, 2, "3.33"),
		rec(generic, "2025-02-14", 13, 5, 1, "4.44"),
	}

	for _, g := range []domain.Granularity{domain.GranularityDay, domain.GranularityMonth} {
		got := Widget(Query{Granularity: g}, current, nil)

		for _, s := range []domain.MetricStats[int64]{got.Impressions, got.Clicks, got.Conversions} {
			require.Len(t, s.Values, len(s.Labels))
			var sum int64
			for _, v := range s.Values {
				sum += v
			}
			assert.Equal(t, s.Total, sum, g)
		}

		sum := decimal.Zero
		for _, v := range got.Cost.Values {
			sum = sum.Add(v)
		}
		assert.True(t, sum.Equal(got.Cost.Total), g)
	}
}

func TestWidgetZeroClicks(t *testing.T) {
	current := []domain.MetricRecord{rec(brand, "2025-01-01", 100, 0, 0, "5.00")}

	got := Widget(daily, current, nil)

	assertDecimal(t, "0", got.ConversionRate.Total)
	assertDecimals(t, []string{"0"}, got.ConversionRate.Values)
	assertDecimal(t, "0", got.CostPerConversion.Total)
	assertDecimal(t, "0", got.ROAS.Total)
	assertDecimal(t, "0", got.ConversionRate.PercentChange)
}

func TestWidgetEmpty(t *testing.T) {
	got := Widget(daily, nil, nil)

	for _, s := range []domain.MetricStats[int64]{got.Impressions, got.Clicks, got.Conversions} {
		assert.NotNil(t, s.Labels)
		assert.Empty(t, s.Labels)
		assert.Empty(t, s.Values)
		assert.Zero(t, s.Total)
		assertDecimal(t, "0", s.PercentChange)
	}
	assertDecimal(t, "0", got.Cost.Total)
	assertDecimal(t, "0", got.CostPerConversion.Total)
}

func TestWidgetIsDeterministic(t *testing.T) {
	current := []domain.MetricRecord{
		rec(generic, "2025-01-02", 200, 20, 3, "80.015"),
		rec(brand, "2025-01-01", 100, 10, 1, "50.005"),
	}
	prior := []domain.MetricRecord{rec(brand, "2024-12-31", 90, 7, 2, "33.3333")}

	assert.Equal(t, Widget(daily, current, prior), Widget(daily, current, prior))
}

func TestTableRowsPerCampaign(t *testing.T) {
	current := []domain.MetricRecord{
		rec(brand, "2025-01-08", 100, 10, 1, "10.00"),
		rec(brand, "2025-01-09", 200, 10, 1, "20.00"),
		rec(paused, "2025-01-09", 999, 99, 9, "99.00"),
	}
	prior := []domain.MetricRecord{
		rec(brand, "2025-01-02", 200, 40, 4, "20.00"),
		rec(generic, "2025-01-03", 10, 2, 1, "3.00"),
	}

	rows := Table(Query{Granularity: domain.GranularityDay, Statuses: activeOnly}, current, prior)

	require.Len(t, rows, 2)

	b := rows[0]
	assert.Equal(t, "Brand", b.CampaignName)
	assert.Equal(t, domain.StatusEnabled, b.Status)
	assert.Equal(t, []string{"2025-01-08", "2025-01-09"}, b.Impressions.Labels)
	assert.Equal(t, []int64{100, 200}, b.Impressions.Values)
	assert.Equal(t, int64(300), b.Impressions.Total)
	assertDecimal(t, "50", b.Impressions.PercentChange)
	assertDecimal(t, "-50", b.Clicks.PercentChange)
	assertDecimal(t, "30", b.Cost.Total)
	assertDecimal(t, "15", b.CostPerConversion.Total)
	assertDecimal(t, "200", b.CostPerConversion.PercentChange)
	assertDecimal(t, "10", b.ConversionRate.Total)
	assertDecimal(t, "0", b.ConversionRate.PercentChange)

	// Present only in the prior window.
	g := rows[1]
	assert.Equal(t, "Generic", g.CampaignName)
	assert.Equal(t, []int64{0, 0}, g.Impressions.Values)
	assert.Zero(t, g.Impressions.Total)
	assertDecimal(t, "-100", g.Impressions.PercentChange)
}

func TestTableExcludesFilteredStatuses(t *testing.T) {
	current := []domain.MetricRecord{rec(paused, "2025-01-09", 1, 1, 1, "1")}

	rows := Table(Query{Granularity: domain.GranularityDay, Statuses: activeOnly}, current, nil)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
