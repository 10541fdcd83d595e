package stats

import (
	"github.com/shopspring/decimal"

	"ad-metrics-hub/internal/core/domain"
)

// Query parameterises the pipeline shared by every output shape.
type Query struct {
	Granularity domain.Granularity
	// Metric selects the plotted count on graphs. Ignored elsewhere.
	Metric domain.MetricFilter
	// Statuses restricts campaign participation. Empty allows all.
	Statuses StatusFilter
}

// Widget builds the channel summary of current compared with prior.
func Widget(q Query, current, prior []domain.MetricRecord) domain.WidgetStats {
	current, prior = q.Statuses.Apply(current), q.Statuses.Apply(prior)

	buckets := Aggregate(current, q.Granularity)
	labels := make([]string, len(buckets))
	cells := make([]Totals, len(buckets))
	var cur Totals
	for i, b := range buckets {
		labels[i] = b.Key.String()
		cells[i] = b.Totals
		cur = cur.Merge(b.Totals)
	}
	prev := Sum(prior)

	return domain.WidgetStats{
		MetricSet: metricSet(labels, cells, cur, prev),
		ROAS:      decimalStats(labels, cells, cur, prev, ROAS),
	}
}

// Graph builds the campaign x period matrix for the selected metric.
func Graph(q Query, records []domain.MetricRecord) (domain.CampaignGraphStats, error) {
	count, err := Counter(q.Metric)
	if err != nil {
		return domain.CampaignGraphStats{}, err
	}

	m := newMatrix(q.Statuses.Apply(records), q.Granularity)
	out := domain.CampaignGraphStats{
		Labels:                m.labels(),
		PerCampaignSeries:     make([]domain.CampaignSeries, 0, len(m.campaigns)),
		PerCampaignEfficiency: make(map[int64]decimal.Decimal, len(m.campaigns)),
	}
	for _, c := range m.campaigns {
		cells := m.aligned(c.ID)
		values := make([]int64, len(cells))
		for i, cell := range cells {
			values[i] = count(cell)
		}
		total := m.totals[c.ID]
		efficiency := Efficiency(total.Cost, count(total))
		out.PerCampaignSeries = append(out.PerCampaignSeries, domain.CampaignSeries{
			CampaignID:   c.ID,
			CampaignName: c.Name,
			Status:       c.Status,
			Values:       values,
			TotalCost:    total.Cost,
			TotalMetric:  count(total),
			Efficiency:   efficiency,
		})
		out.PerCampaignEfficiency[c.ID] = efficiency
	}
	return out, nil
}

// Table builds one comparison row per campaign seen in either window.
func Table(q Query, current, prior []domain.MetricRecord) []domain.CampaignTableRow {
	current, prior = q.Statuses.Apply(current), q.Statuses.Apply(prior)

	m := newMatrix(current, q.Granularity)
	prevTotals := GroupBy(prior, func(r domain.MetricRecord) int64 { return r.CampaignID }, addRecord)
	labels := m.labels()

	campaigns := campaignsOf(prior, current)
	rows := make([]domain.CampaignTableRow, 0, len(campaigns))
	for _, c := range campaigns {
		rows = append(rows, domain.CampaignTableRow{
			CampaignID:   c.ID,
			CampaignName: c.Name,
			Status:       c.Status,
			MetricSet:    metricSet(labels, m.aligned(c.ID), m.totals[c.ID], prevTotals[c.ID]),
		})
	}
	return rows
}

func metricSet(labels []string, cells []Totals, cur, prev Totals) domain.MetricSet {
	return domain.MetricSet{
		Impressions:       countStats(labels, cells, cur, prev, func(t Totals) int64 { return t.Impressions }),
		Clicks:            countStats(labels, cells, cur, prev, func(t Totals) int64 { return t.Clicks }),
		Conversions:       countStats(labels, cells, cur, prev, func(t Totals) int64 { return t.Conversions }),
		Cost:              decimalStats(labels, cells, cur, prev, func(t Totals) decimal.Decimal { return t.Cost }),
		CostPerConversion: decimalStats(labels, cells, cur, prev, CostPerConversion),
		ConversionRate:    decimalStats(labels, cells, cur, prev, ConversionRate),
	}
}

func countStats(labels []string, cells []Totals, cur, prev Totals, f func(Totals) int64) domain.MetricStats[int64] {
	values := make([]int64, len(cells))
	for i, c := range cells {
		values[i] = f(c)
	}
	return domain.MetricStats[int64]{
		Labels:        labels,
		Values:        values,
		Total:         f(cur),
		PercentChange: CountChange(f(cur), f(prev)),
	}
}

func decimalStats(labels []string, cells []Totals, cur, prev Totals, f func(Totals) decimal.Decimal) domain.MetricStats[decimal.Decimal] {
	values := make([]decimal.Decimal, len(cells))
	for i, c := range cells {
		values[i] = normalize(f(c))
	}
	total := normalize(f(cur))
	return domain.MetricStats[decimal.Decimal]{
		Labels:        labels,
		Values:        values,
		Total:         total,
		PercentChange: PercentChange(total, normalize(f(prev))),
	}
}

// normalize maps every zero, including the uninitialised Decimal, to
// decimal.Zero.
func normalize(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return d
}
