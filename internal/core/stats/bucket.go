package stats

import (
	"cmp"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ad-metrics-hub/internal/core/domain"
)

// BucketKey identifies a calendar day or, when Day is zero, a calendar
// month.
type BucketKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the bucket d falls into under g.
func KeyOf(d time.Time, g domain.Granularity) BucketKey {
	y, m, day := d.Date()
	if g == domain.GranularityMonth {
		return BucketKey{Year: y, Month: m}
	}
	return BucketKey{Year: y, Month: m, Day: day}
}

// String renders the key as yyyy-MM-dd or yyyy-MM.
func (k BucketKey) String() string {
	if k.Day == 0 {
		return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
	}
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// Compare orders keys chronologically.
func (k BucketKey) Compare(o BucketKey) int {
	if c := cmp.Compare(k.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Month, o.Month); c != 0 {
		return c
	}
	return cmp.Compare(k.Day, o.Day)
}

func compareKeys(a, b BucketKey) int { return a.Compare(b) }

// Totals are the summed raw fields of a set of records.
type Totals struct {
	Impressions     int64
	Clicks          int64
	Conversions     int64
	Cost            decimal.Decimal
	ConversionValue decimal.Decimal
}

// Add returns t with r's fields added.
func (t Totals) Add(r domain.MetricRecord) Totals {
	t.Impressions += r.Impressions
	t.Clicks += r.Clicks
	t.Conversions += r.Conversions
	t.Cost = t.Cost.Add(r.Cost)
	t.ConversionValue = t.ConversionValue.Add(r.ConversionValue)
	return t
}

// Merge returns the sum of t and o.
func (t Totals) Merge(o Totals) Totals {
	t.Impressions += o.Impressions
	t.Clicks += o.Clicks
	t.Conversions += o.Conversions
	t.Cost = t.Cost.Add(o.Cost)
	t.ConversionValue = t.ConversionValue.Add(o.ConversionValue)
	return t
}

// Sum totals all records.
func Sum(records []domain.MetricRecord) Totals {
	var t Totals
	for _, r := range records {
		t = t.Add(r)
	}
	return t
}

func addRecord(t Totals, r domain.MetricRecord) Totals { return t.Add(r) }

// Bucket holds the totals of every record falling into Key.
type Bucket struct {
	Key BucketKey
	Totals
}

// Aggregate sums records into buckets of granularity g, ascending by key.
// Only keys present in the input get a bucket.
func Aggregate(records []domain.MetricRecord, g domain.Granularity) []Bucket {
	grouped := GroupBy(records, func(r domain.MetricRecord) BucketKey {
		return KeyOf(r.Date, g)
	}, addRecord)

	keys := SortedKeys(grouped, compareKeys)
	out := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, Bucket{Key: k, Totals: grouped[k]})
	}
	return out
}
