package stats

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"ad-metrics-hub/internal/core/domain"
)

// StatusFilter is a campaign-status allow-list. An empty filter allows every
// status.
type StatusFilter []string

// Allows reports whether status passes the filter, ignoring case.
func (f StatusFilter) Allows(status string) bool {
	if len(f) == 0 {
		return true
	}
	status = domain.NormalizeStatus(status)
	for _, s := range f {
		if domain.NormalizeStatus(s) == status {
			return true
		}
	}
	return false
}

// Apply returns the records whose campaign status is allowed.
func (f StatusFilter) Apply(records []domain.MetricRecord) []domain.MetricRecord {
	if len(f) == 0 {
		return records
	}
	out := make([]domain.MetricRecord, 0, len(records))
	for _, r := range records {
		if f.Allows(r.CampaignStatus) {
			out = append(out, r)
		}
	}
	return out
}

// Counter extracts the count metric m selects.
func Counter(m domain.MetricFilter) (func(Totals) int64, error) {
	switch m {
	case domain.MetricImpressions:
		return func(t Totals) int64 { return t.Impressions }, nil
	case domain.MetricClicks:
		return func(t Totals) int64 { return t.Clicks }, nil
	case domain.MetricConversions:
		return func(t Totals) int64 { return t.Conversions }, nil
	default:
		return nil, domain.ErrUnknownMetric
	}
}

type campaignRef struct {
	ID     int64
	Name   string
	Status string
}

func compareCampaigns(a, b campaignRef) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

type cellKey struct {
	Campaign int64
	Bucket   BucketKey
}

// matrix is records partitioned by campaign x bucket, with the global label
// axis built from every campaign's keys.
type matrix struct {
	axis      []BucketKey
	campaigns []campaignRef
	cells     map[cellKey]Totals
	totals    map[int64]Totals
}

func newMatrix(records []domain.MetricRecord, g domain.Granularity) *matrix {
	cells := GroupBy(records, func(r domain.MetricRecord) cellKey {
		return cellKey{Campaign: r.CampaignID, Bucket: KeyOf(r.Date, g)}
	}, addRecord)
	totals := GroupBy(records, func(r domain.MetricRecord) int64 { return r.CampaignID }, addRecord)

	// The axis is complete before any series is aligned to it.
	present := make(map[BucketKey]struct{}, len(cells))
	for k := range cells {
		present[k.Bucket] = struct{}{}
	}

	return &matrix{
		axis:      SortedKeys(present, compareKeys),
		campaigns: campaignsOf(records),
		cells:     cells,
		totals:    totals,
	}
}

// campaignsOf lists the distinct campaigns in records, sorted by name. The
// status of the latest record wins.
func campaignsOf(records ...[]domain.MetricRecord) []campaignRef {
	type seen struct {
		ref  campaignRef
		last domain.MetricRecord
	}
	byID := make(map[int64]seen)
	for _, rs := range records {
		for _, r := range rs {
			s, ok := byID[r.CampaignID]
			if !ok || r.Date.After(s.last.Date) {
				byID[r.CampaignID] = seen{
					ref:  campaignRef{ID: r.CampaignID, Name: r.CampaignName, Status: r.CampaignStatus},
					last: r,
				}
			}
		}
	}

	refs := make([]campaignRef, 0, len(byID))
	for _, s := range byID {
		refs = append(refs, s.ref)
	}
	slices.SortFunc(refs, compareCampaigns)
	return refs
}

func (m *matrix) labels() []string {
	return labelsOf(m.axis)
}

// aligned returns the campaign's cells along the axis, zero where the
// campaign had no records.
func (m *matrix) aligned(campaign int64) []Totals {
	out := make([]Totals, len(m.axis))
	for i, k := range m.axis {
		out[i] = m.cells[cellKey{Campaign: campaign, Bucket: k}]
	}
	return out
}

func labelsOf(keys []BucketKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}

// Efficiency is cost divided by a count metric at currency scale; zero when
// the count is zero.
func Efficiency(cost decimal.Decimal, count int64) decimal.Decimal {
	return CostPer(cost, count)
}
