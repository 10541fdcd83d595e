package port

import (
	"context"
	"errors"

	"ad-metrics-hub/internal/core/domain"
)

var (
	ErrUnknownChannel = errors.New("unknown marketing channel")
	ErrInvalidRecord  = errors.New("invalid metric record")
)

// MetricRepository is the persistence port for campaign metrics. It is an
// outbound port in hexagonal architecture. Implementations must be safe for
// concurrent use; every fetch returns an independent slice the caller may
// keep.
type MetricRepository interface {
	// GetChannel returns the marketing channel with the given id, or nil
	// when it does not exist.
	GetChannel(ctx context.Context, channelID int64) (*domain.MarketingChannel, error)
	// FetchMetrics returns every daily record of the channel's campaigns
	// inside window, ordered by date then campaign.
	FetchMetrics(ctx context.Context, channelID int64, window domain.DateWindow) ([]domain.MetricRecord, error)
	// FetchMetricsByStatus is FetchMetrics restricted to campaigns whose
	// status is one of statuses. An empty list allows every status.
	FetchMetricsByStatus(ctx context.Context, channelID int64, statuses []string, window domain.DateWindow) ([]domain.MetricRecord, error)
	// UpsertMetrics stores rows for the channel. Campaigns are matched by
	// external id and created or renamed as needed; a row replaces any
	// existing record for the same campaign and date. It returns the number
	// of rows written.
	UpsertMetrics(ctx context.Context, channelID int64, rows []domain.MetricRecord) (int, error)
}
