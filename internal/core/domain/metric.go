package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MetricRecord is one day of performance for one campaign. Date is a civil
// date stored as UTC midnight. At most one record exists per (campaign, date).
type MetricRecord struct {
	CampaignID         int64
	CampaignExternalID string
	CampaignName       string
	CampaignStatus     string
	Date               time.Time
	Impressions        int64
	Clicks             int64
	Conversions        int64
	Cost               decimal.Decimal
	ConversionValue    decimal.Decimal
}

// DateWindow is an inclusive range of calendar days. Start <= End.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

const secondsPerDay = 24 * 60 * 60

// Days returns the number of calendar days covered by the window. Bounds
// are civil dates at UTC midnight.
func (w DateWindow) Days() int {
	return int((w.End.Unix()-w.Start.Unix())/secondsPerDay) + 1
}

// Contains reports whether d falls inside the window.
func (w DateWindow) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Granularity is the bucket size of a time series.
type Granularity string

const (
	GranularityDay   Granularity = "DAY"
	GranularityMonth Granularity = "MONTH"
)

var ErrUnknownMetric = errors.New("unknown metric")

// MetricFilter selects the count metric plotted on campaign graphs.
type MetricFilter string

const (
	MetricImpressions MetricFilter = "IMPRESSIONS"
	MetricClicks      MetricFilter = "CLICKS"
	MetricConversions MetricFilter = "CONVERSIONS"
)

// ParseMetricFilter parses a metric selector, case-insensitively.
func ParseMetricFilter(s string) (MetricFilter, error) {
	switch m := MetricFilter(strings.ToUpper(strings.TrimSpace(s))); m {
	case MetricImpressions, MetricClicks, MetricConversions:
		return m, nil
	default:
		return "", ErrUnknownMetric
	}
}
