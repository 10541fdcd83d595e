package port

import (
	"context"

	"ad-metrics-hub/internal/core/domain"
	"ad-metrics-hub/internal/core/period"
)

// StatsUseCase defines the dashboard operations exposed by the metrics hub.
// This interface is the primary port into the application domain.
type StatsUseCase interface {
	// WidgetStats returns the channel summary for the requested range and
	// its percent change against the prior window.
	WidgetStats(ctx context.Context, req StatsReq) (*domain.WidgetStats, error)

	// CampaignGraph returns per-campaign series of req.Metric aligned to a
	// shared label axis, plus the cost per unit of that metric.
	CampaignGraph(ctx context.Context, req StatsReq) (*domain.CampaignGraphStats, error)

	// CampaignTable returns one comparison row per campaign.
	CampaignTable(ctx context.Context, req StatsReq) ([]domain.CampaignTableRow, error)

	// IngestMetrics validates and stores daily records for a channel.
	IngestMetrics(ctx context.Context, channelID int64, rows []domain.MetricRecord) (int, error)
}

// StatsReq carries the explicit parameters of every stats operation.
// Statuses overrides the default campaign allow-list when non-empty.
type StatsReq struct {
	ChannelID int64
	Range     period.Request
	Metric    domain.MetricFilter
	Statuses  []string
}
