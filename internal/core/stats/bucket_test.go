package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-metrics-hub/internal/core/domain"
)

func TestBucketKeyString(t *testing.T) {
	d := date("2025-03-07")

	assert.Equal(t, "2025-03-07", KeyOf(d, domain.GranularityDay).String())
	assert.Equal(t, "2025-03", KeyOf(d, domain.GranularityMonth).String())
}

func TestBucketKeyCompare(t *testing.T) {
	a := KeyOf(date("2024-12-31"), domain.GranularityDay)
	b := KeyOf(date("2025-01-01"), domain.GranularityDay)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestAggregateDaily(t *testing.T) {
	records := []domain.MetricRecord{
		rec(generic, "2025-01-02", 200, 20, 2, "80.00"),
		rec(brand, "2025-01-01", 100, 10, 1, "50.00"),
		rec(generic, "2025-01-01", 10, 1, 0, "5.25"),
	}

	buckets := Aggregate(records, domain.GranularityDay)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-01-01", buckets[0].Key.String())
	assert.Equal(t, int64(110), buckets[0].Impressions)
	assert.Equal(t, int64(11), buckets[0].Clicks)
	assert.Equal(t, int64(1), buckets[0].Conversions)
	assertDecimal(t, "55.25", buckets[0].Cost)
	assert.Equal(t, "2025-01-02", buckets[1].Key.String())
	assertDecimal(t, "80", buckets[1].Cost)
}

func TestAggregateMonthly(t *testing.T) {
	records := []domain.MetricRecord{
		rec(brand, "2025-02-28", 1, 1, 1, "1.10"),
		rec(brand, "2025-01-01", 2, 2, 2, "2.20"),
		rec(brand, "2025-01-31", 3, 3, 3, "3.30"),
	}

	buckets := Aggregate(records, domain.GranularityMonth)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-01", buckets[0].Key.String())
	assert.Equal(t, int64(5), buckets[0].Impressions)
	assertDecimal(t, "5.50", buckets[0].Cost)
	assert.Equal(t, "2025-02", buckets[1].Key.String())
}

func TestAggregateIsSparse(t *testing.T) {
	records := []domain.MetricRecord{
		rec(brand, "2025-01-01", 1, 0, 0, "0"),
		rec(brand, "2025-01-05", 1, 0, 0, "0"),
	}

	buckets := Aggregate(records, domain.GranularityDay)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-01-05", buckets[1].Key.String())
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, domain.GranularityDay))
}

func TestAggregateCostIsOrderIndependent(t *testing.T) {
	var records []domain.MetricRecord
	costs := []string{"0.10", "0.20", "0.30", "1234.567", "0.003", "99.99", "0.01"}
	for i, c := range costs {
		records = append(records, rec(brand, "2025-01-0"+string(rune('1'+i%3)), 1, 1, 0, c))
	}
	want := Sum(records)

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.MetricRecord(nil), records...)
		rnd.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		var total Totals
		for _, b := range Aggregate(shuffled, domain.GranularityMonth) {
			total = total.Merge(b.Totals)
		}
		assert.True(t, want.Cost.Equal(total.Cost))
		assert.Equal(t, want.Cost.String(), Sum(shuffled).Cost.String())
	}
	assertDecimal(t, "1335.17", want.Cost)
}
