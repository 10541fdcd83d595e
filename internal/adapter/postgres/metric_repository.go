package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-metrics-hub/internal/core/domain"
	"ad-metrics-hub/internal/core/period"
	"ad-metrics-hub/internal/core/port"
)

var _ port.MetricRepository = (*MetricRepository)(nil)

// MetricRepository implements port.MetricRepository using pgxpool for
// PostgreSQL.
type MetricRepository struct {
	pool *pgxpool.Pool
}

// NewMetricRepository returns a new repository instance.
func NewMetricRepository(pool *pgxpool.Pool) *MetricRepository {
	return &MetricRepository{pool: pool}
}

const selectMetrics = `
        SELECT
            m.campaign_id,
            c.campaign_id,
            c.name,
            c.status,
            m.stats_date,
            m.impressions,
            m.clicks,
            m.conversions,
            m.cost,
            m.conversion_value
        FROM campaign_metrics m
        JOIN campaigns c ON c.id = m.campaign_id
        WHERE c.marketing_channels_id = $1
          AND m.stats_date BETWEEN $2 AND $3`

const orderMetrics = `
        ORDER BY m.stats_date, m.campaign_id`

// GetChannel returns a marketing channel by id.
func (r *MetricRepository) GetChannel(ctx context.Context, channelID int64) (*domain.MarketingChannel, error) {
	var ch domain.MarketingChannel
	err := r.pool.QueryRow(ctx, `SELECT id, source_name, is_active, url, date_create FROM marketing_channels WHERE id = $1`, channelID).
		Scan(&ch.ID, &ch.SourceName, &ch.IsActive, &ch.URL, &ch.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// FetchMetrics returns the channel's daily records inside window.
func (r *MetricRepository) FetchMetrics(ctx context.Context, channelID int64, window domain.DateWindow) ([]domain.MetricRecord, error) {
	query, args := metricsQuery(channelID, window, nil)
	return r.query(ctx, query, args...)
}

// FetchMetricsByStatus returns the channel's daily records inside window for
// campaigns whose status is in statuses. Matching ignores case. An empty
// list allows every status.
func (r *MetricRepository) FetchMetricsByStatus(ctx context.Context, channelID int64, statuses []string, window domain.DateWindow) ([]domain.MetricRecord, error) {
	query, args := metricsQuery(channelID, window, statuses)
	return r.query(ctx, query, args...)
}

// metricsQuery builds the windowed fetch. Stored statuses are normalised on
// upsert, so the filter compares the column directly and stays indexable.
func metricsQuery(channelID int64, window domain.DateWindow, statuses []string) (string, []any) {
	args := []any{channelID, window.Start, window.End}
	normalized := make([]string, 0, len(statuses))
	for _, s := range statuses {
		if s = domain.NormalizeStatus(s); s != "" {
			normalized = append(normalized, s)
		}
	}
	if len(normalized) == 0 {
		return selectMetrics + orderMetrics, args
	}
	query := selectMetrics + `
          AND c.status = ANY($4)` + orderMetrics
	return query, append(args, normalized)
}

func (r *MetricRepository) query(ctx context.Context, query string, args ...any) ([]domain.MetricRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MetricRecord, error) {
		var m domain.MetricRecord
		err := row.Scan(
			&m.CampaignID,
			&m.CampaignExternalID,
			&m.CampaignName,
			&m.CampaignStatus,
			&m.Date,
			&m.Impressions,
			&m.Clicks,
			&m.Conversions,
			&m.Cost,
			&m.ConversionValue,
		)
		m.Date = period.Day(m.Date)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan metrics: %w", err)
	}
	return records, nil
}

const upsertCampaign = `
        INSERT INTO campaigns (marketing_channels_id, campaign_id, name, status)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (marketing_channels_id, campaign_id) DO UPDATE
        SET name   = COALESCE(NULLIF(EXCLUDED.name, ''), campaigns.name),
            status = COALESCE(NULLIF(EXCLUDED.status, ''), campaigns.status)
        RETURNING id`

const upsertMetric = `
        INSERT INTO campaign_metrics
            (campaign_id, stats_date, impressions, clicks, conversions, cost, conversion_value)
        VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric)
        ON CONFLICT (campaign_id, stats_date) DO UPDATE
        SET impressions      = EXCLUDED.impressions,
            clicks           = EXCLUDED.clicks,
            conversions      = EXCLUDED.conversions,
            cost             = EXCLUDED.cost,
            conversion_value = EXCLUDED.conversion_value`

// UpsertMetrics writes rows in one transaction. Campaigns are resolved by
// external id first, then every record is inserted or replaced.
func (r *MetricRepository) UpsertMetrics(ctx context.Context, channelID int64, rows []domain.MetricRecord) (n int, err error) {
	if len(rows) == 0 {
		return 0, nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// the last row of a campaign carries its current name and status
	latest := make(map[string]domain.MetricRecord, len(rows))
	var order []string
	for _, row := range rows {
		if _, ok := latest[row.CampaignExternalID]; !ok {
			order = append(order, row.CampaignExternalID)
		}
		latest[row.CampaignExternalID] = row
	}

	campaigns := &pgx.Batch{}
	for _, ext := range order {
		row := latest[ext]
		campaigns.Queue(upsertCampaign, channelID, ext, row.CampaignName, domain.NormalizeStatus(row.CampaignStatus))
	}
	ids := make(map[string]int64, len(order))
	br := tx.SendBatch(ctx, campaigns)
	for _, ext := range order {
		var id int64
		if err = br.QueryRow().Scan(&id); err != nil {
			_ = br.Close()
			return 0, fmt.Errorf("upsert campaign %q: %w", ext, err)
		}
		ids[ext] = id
	}
	if err = br.Close(); err != nil {
		return 0, err
	}

	metrics := &pgx.Batch{}
	for _, row := range rows {
		metrics.Queue(upsertMetric,
			ids[row.CampaignExternalID],
			period.Day(row.Date),
			row.Impressions,
			row.Clicks,
			row.Conversions,
			row.Cost.String(),
			row.ConversionValue.String(),
		)
	}
	br = tx.SendBatch(ctx, metrics)
	for range rows {
		if _, err = br.Exec(); err != nil {
			_ = br.Close()
			return 0, fmt.Errorf("upsert metric: %w", err)
		}
	}
	if err = br.Close(); err != nil {
		return 0, err
	}
	return len(rows), nil
}
