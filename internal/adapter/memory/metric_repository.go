package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"ad-metrics-hub/internal/core/domain"
	"ad-metrics-hub/internal/core/period"
	"ad-metrics-hub/internal/core/port"
)

type campaignKey struct {
	channel    int64
	externalID string
}

type metricKey struct {
	campaign int64
	date     time.Time
}

var _ port.MetricRepository = (*MetricRepository)(nil)

// MetricRepository is an in-process implementation of
// port.MetricRepository. It backs tests and STORE_DRIVER=memory.
type MetricRepository struct {
	mu         sync.RWMutex
	channels   map[int64]domain.MarketingChannel
	campaigns  map[int64]*domain.Campaign
	byExternal map[campaignKey]int64
	metrics    map[metricKey]domain.MetricRecord
	nextID     int64
}

// NewMetricRepository returns an empty store knowing channels.
func NewMetricRepository(channels ...domain.MarketingChannel) *MetricRepository {
	r := &MetricRepository{
		channels:   make(map[int64]domain.MarketingChannel, len(channels)),
		campaigns:  make(map[int64]*domain.Campaign),
		byExternal: make(map[campaignKey]int64),
		metrics:    make(map[metricKey]domain.MetricRecord),
	}
	for _, ch := range channels {
		r.channels[ch.ID] = ch
	}
	return r
}

// DefaultChannels mirrors the rows created by the initial migration.
func DefaultChannels() []domain.MarketingChannel {
	return []domain.MarketingChannel{
		{ID: 1, SourceName: "GOOGLE_ADS", IsActive: true, URL: "https://ads.google.com"},
		{ID: 5, SourceName: "BING_ADS", IsActive: true, URL: "https://ads.microsoft.com"},
	}
}

func (r *MetricRepository) GetChannel(_ context.Context, channelID int64) (*domain.MarketingChannel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.channels[channelID]
	if !ok {
		return nil, nil
	}
	return &ch, nil
}

func (r *MetricRepository) FetchMetrics(ctx context.Context, channelID int64, window domain.DateWindow) ([]domain.MetricRecord, error) {
	return r.query(ctx, channelID, window, nil)
}

// FetchMetricsByStatus keeps campaigns whose status is in statuses. An
// empty list allows every status.
func (r *MetricRepository) FetchMetricsByStatus(ctx context.Context, channelID int64, statuses []string, window domain.DateWindow) ([]domain.MetricRecord, error) {
	allowed := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		if s = domain.NormalizeStatus(s); s != "" {
			allowed[s] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		return r.query(ctx, channelID, window, nil)
	}
	return r.query(ctx, channelID, window, func(c *domain.Campaign) bool {
		_, ok := allowed[domain.NormalizeStatus(c.Status)]
		return ok
	})
}

func (r *MetricRepository) query(ctx context.Context, channelID int64, window domain.DateWindow, keep func(*domain.Campaign) bool) ([]domain.MetricRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.MetricRecord
	for k, m := range r.metrics {
		c := r.campaigns[k.campaign]
		if c.ChannelID != channelID || !window.Contains(k.date) {
			continue
		}
		if keep != nil && !keep(c) {
			continue
		}
		m.CampaignExternalID = c.ExternalID
		m.CampaignName = c.Name
		m.CampaignStatus = c.Status
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b domain.MetricRecord) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.CampaignID, b.CampaignID)
	})
	return out, nil
}

// UpsertMetrics creates unknown campaigns, refreshes the name and status of
// known ones, and replaces records on the same campaign and date.
func (r *MetricRepository) UpsertMetrics(ctx context.Context, channelID int64, rows []domain.MetricRecord) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		ck := campaignKey{channelID, row.CampaignExternalID}
		id, ok := r.byExternal[ck]
		if !ok {
			r.nextID++
			id = r.nextID
			r.byExternal[ck] = id
			r.campaigns[id] = &domain.Campaign{ID: id, ChannelID: channelID, ExternalID: row.CampaignExternalID}
		}
		c := r.campaigns[id]
		if row.CampaignName != "" {
			c.Name = row.CampaignName
		}
		if row.CampaignStatus != "" {
			c.Status = domain.NormalizeStatus(row.CampaignStatus)
		}

		d := period.Day(row.Date)
		row.CampaignID = id
		row.Date = d
		r.metrics[metricKey{id, d}] = row
	}
	return len(rows), nil
}
