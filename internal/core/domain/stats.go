package domain

import "github.com/shopspring/decimal"

// MetricStats is a single metric series: values aligned with labels, the
// window total and the percent change of that total against the prior
// window. len(Labels) == len(Values).
type MetricStats[T any] struct {
	Labels        []string        `json:"labels"`
	Values        []T             `json:"values"`
	Total         T               `json:"total"`
	PercentChange decimal.Decimal `json:"percentChange"`
}

// MetricSet holds the six dashboard metrics shared by the widget and the
// campaign table.
type MetricSet struct {
	Impressions       MetricStats[int64]           `json:"impressions"`
	Clicks            MetricStats[int64]           `json:"clicks"`
	Conversions       MetricStats[int64]           `json:"conversions"`
	Cost              MetricStats[decimal.Decimal] `json:"cost"`
	CostPerConversion MetricStats[decimal.Decimal] `json:"costPerConversion"`
	ConversionRate    MetricStats[decimal.Decimal] `json:"conversionRate"`
}

// WidgetStats is the single-series summary of a channel over a window.
type WidgetStats struct {
	MetricSet
	ROAS MetricStats[decimal.Decimal] `json:"roas"`
}

// CampaignSeries is one campaign's values for the selected metric, aligned
// to the graph label axis.
type CampaignSeries struct {
	CampaignID   int64           `json:"campaignId"`
	CampaignName string          `json:"campaignName"`
	Status       string          `json:"status"`
	Values       []int64         `json:"values"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	TotalMetric  int64           `json:"totalMetric"`
	Efficiency   decimal.Decimal `json:"efficiency"`
}

// CampaignGraphStats is the multi-campaign graph matrix. Campaign names are
// not unique, so efficiency is keyed by campaign id.
type CampaignGraphStats struct {
	Labels                []string                  `json:"labels"`
	PerCampaignSeries     []CampaignSeries          `json:"perCampaignSeries"`
	PerCampaignEfficiency map[int64]decimal.Decimal `json:"perCampaignEfficiency"`
}

// CampaignTableRow is one row of the campaign comparison table.
type CampaignTableRow struct {
	CampaignID   int64  `json:"campaignId"`
	CampaignName string `json:"campaignName"`
	Status       string `json:"status"`
	MetricSet
}
