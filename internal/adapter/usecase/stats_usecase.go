package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ad-metrics-hub/internal/core/domain"
	"ad-metrics-hub/internal/core/period"
	"ad-metrics-hub/internal/core/port"
	"ad-metrics-hub/internal/core/stats"
	"ad-metrics-hub/internal/metrics"
)

var _ port.StatsUseCase = (*StatsUseCase)(nil)

// StatsUseCase resolves request ranges, loads records from the repository
// and hands them to the stats pipeline. It implements port.StatsUseCase.
type StatsUseCase struct {
	repo     port.MetricRepository
	resolver *period.Resolver

	// defaultStatuses is the campaign allow-list used by the graph and
	// table views when a request does not carry its own.
	defaultStatuses []string

	log     *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a StatsUseCase.
type Option func(*StatsUseCase)

// WithDefaultStatuses sets the allow-list for campaign views.
func WithDefaultStatuses(statuses []string) Option {
	return func(u *StatsUseCase) { u.defaultStatuses = normalizeStatuses(statuses) }
}

// WithLogger sets the logger. slog.Default is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(u *StatsUseCase) { u.log = l }
}

// WithMetrics enables build instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *StatsUseCase) { u.metrics = m }
}

// NewStatsUseCase creates a usecase over repo. A nil resolver falls back to
// a UTC resolver with default thresholds.
func NewStatsUseCase(repo port.MetricRepository, resolver *period.Resolver, opts ...Option) *StatsUseCase {
	if resolver == nil {
		resolver = period.NewResolver()
	}
	u := &StatsUseCase{
		repo:            repo,
		resolver:        resolver,
		defaultStatuses: []string{domain.StatusEnabled, domain.StatusActive},
		log:             slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// WidgetStats returns the channel summary. Every campaign participates
// unless req.Statuses narrows it.
func (u *StatsUseCase) WidgetStats(ctx context.Context, req port.StatsReq) (*domain.WidgetStats, error) {
	start := time.Now()
	rng, err := u.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	current, err := u.repo.FetchMetrics(ctx, req.ChannelID, rng.Current)
	if err != nil {
		return nil, fmt.Errorf("fetch current metrics: %w", err)
	}
	prior, err := u.repo.FetchMetrics(ctx, req.ChannelID, rng.Prior)
	if err != nil {
		return nil, fmt.Errorf("fetch prior metrics: %w", err)
	}

	q := stats.Query{Granularity: rng.Granularity, Statuses: normalizeStatuses(req.Statuses)}
	out := stats.Widget(q, current, prior)
	u.observe("widget", req, rng, len(current)+len(prior), start)
	return &out, nil
}

// CampaignGraph returns per-campaign series of req.Metric over the current
// window.
func (u *StatsUseCase) CampaignGraph(ctx context.Context, req port.StatsReq) (*domain.CampaignGraphStats, error) {
	start := time.Now()
	if _, err := stats.Counter(req.Metric); err != nil {
		return nil, fmt.Errorf("%w: %q", err, req.Metric)
	}
	rng, err := u.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	statuses := u.statuses(req)
	records, err := u.repo.FetchMetricsByStatus(ctx, req.ChannelID, statuses, rng.Current)
	if err != nil {
		return nil, fmt.Errorf("fetch metrics: %w", err)
	}

	q := stats.Query{Granularity: rng.Granularity, Metric: req.Metric, Statuses: statuses}
	out, err := stats.Graph(q, records)
	if err != nil {
		return nil, err
	}
	u.observe("graph", req, rng, len(records), start)
	return &out, nil
}

// CampaignTable returns one comparison row per campaign found in either
// window.
func (u *StatsUseCase) CampaignTable(ctx context.Context, req port.StatsReq) ([]domain.CampaignTableRow, error) {
	start := time.Now()
	rng, err := u.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	statuses := u.statuses(req)
	current, err := u.repo.FetchMetricsByStatus(ctx, req.ChannelID, statuses, rng.Current)
	if err != nil {
		return nil, fmt.Errorf("fetch current metrics: %w", err)
	}
	prior, err := u.repo.FetchMetricsByStatus(ctx, req.ChannelID, statuses, rng.Prior)
	if err != nil {
		return nil, fmt.Errorf("fetch prior metrics: %w", err)
	}

	q := stats.Query{Granularity: rng.Granularity, Statuses: statuses}
	rows := stats.Table(q, current, prior)
	u.observe("table", req, rng, len(current)+len(prior), start)
	return rows, nil
}

// IngestMetrics validates rows and upserts them for the channel. Dates and
// statuses are normalised in place. The whole batch is rejected when any row
// is invalid.
func (u *StatsUseCase) IngestMetrics(ctx context.Context, channelID int64, rows []domain.MetricRecord) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if err := u.channel(ctx, channelID); err != nil {
		return 0, err
	}
	type key struct {
		campaign string
		day      time.Time
	}
	seen := make(map[key]struct{}, len(rows))
	for i := range rows {
		r := &rows[i]
		r.Date = period.Day(r.Date)
		r.CampaignStatus = domain.NormalizeStatus(r.CampaignStatus)
		if err := validate(*r); err != nil {
			return 0, fmt.Errorf("row %d: %w", i, err)
		}
		k := key{r.CampaignExternalID, r.Date}
		if _, dup := seen[k]; dup {
			return 0, fmt.Errorf("row %d: %w: duplicate campaign %q on %s",
				i, port.ErrInvalidRecord, r.CampaignExternalID, r.Date.Format(period.DateLayout))
		}
		seen[k] = struct{}{}
	}

	n, err := u.repo.UpsertMetrics(ctx, channelID, rows)
	if err != nil {
		return 0, fmt.Errorf("upsert metrics: %w", err)
	}
	u.metrics.ObserveIngest(n)
	u.log.DebugContext(ctx, "metrics ingested", slog.Int64("channel_id", channelID), slog.Int("rows", n))
	return n, nil
}

// prepare resolves the request range and checks the channel exists.
func (u *StatsUseCase) prepare(ctx context.Context, req port.StatsReq) (period.Range, error) {
	rng, err := u.resolver.Resolve(req.Range)
	if err != nil {
		return period.Range{}, err
	}
	if err = u.channel(ctx, req.ChannelID); err != nil {
		return period.Range{}, err
	}
	return rng, nil
}

func (u *StatsUseCase) channel(ctx context.Context, id int64) error {
	ch, err := u.repo.GetChannel(ctx, id)
	if err != nil {
		return fmt.Errorf("get channel: %w", err)
	}
	if ch == nil {
		return fmt.Errorf("%w: %d", port.ErrUnknownChannel, id)
	}
	return nil
}

func (u *StatsUseCase) statuses(req port.StatsReq) []string {
	if s := normalizeStatuses(req.Statuses); len(s) > 0 {
		return s
	}
	return u.defaultStatuses
}

func (u *StatsUseCase) observe(view string, req port.StatsReq, rng period.Range, records int, start time.Time) {
	elapsed := time.Since(start)
	u.metrics.ObserveBuild(view, records, elapsed)
	u.log.Debug("stats built",
		slog.String("view", view),
		slog.Int64("channel_id", req.ChannelID),
		slog.String("current", windowString(rng.Current)),
		slog.String("prior", windowString(rng.Prior)),
		slog.String("granularity", string(rng.Granularity)),
		slog.Int("records", records),
		slog.Duration("elapsed", elapsed),
	)
}

func validate(r domain.MetricRecord) error {
	switch {
	case r.CampaignExternalID == "":
		return fmt.Errorf("%w: campaign external id is required", port.ErrInvalidRecord)
	case r.Date.IsZero():
		return fmt.Errorf("%w: date is required", port.ErrInvalidRecord)
	case r.Impressions < 0 || r.Clicks < 0 || r.Conversions < 0:
		return fmt.Errorf("%w: counters must be non-negative", port.ErrInvalidRecord)
	case r.Cost.IsNegative() || r.ConversionValue.IsNegative():
		return fmt.Errorf("%w: cost and conversion value must be non-negative", port.ErrInvalidRecord)
	}
	return nil
}

func normalizeStatuses(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = domain.NormalizeStatus(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func windowString(w domain.DateWindow) string {
	return w.Start.Format(period.DateLayout) + ".." + w.End.Format(period.DateLayout)
}
