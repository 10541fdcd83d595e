package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ad-metrics-hub/internal/core/domain"
	"ad-metrics-hub/internal/core/period"
	"ad-metrics-hub/internal/core/port"
)

// SeedDays is how far back demo metrics reach. It covers LAST_YEAR and its
// prior window for most of the year.
const SeedDays = 400

// seedBatch bounds the rows sent per upsert.
const seedBatch = 500

var seedCampaigns = []struct {
	name   string
	status string
}{
	{"Brand Search", domain.StatusEnabled},
	{"Generic Search", domain.StatusEnabled},
	{"Display Remarketing", domain.StatusActive},
	{"Shopping", domain.StatusActive},
	{"Competitors", domain.StatusPaused},
	{"Black Friday", domain.StatusBudgetPaused},
}

// Seed fills every channel in channelIDs with demo campaigns of mixed
// statuses and SeedDays of random daily metrics ending today.
func Seed(ctx context.Context, repo port.MetricRepository, today time.Time, channelIDs ...int64) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	today = period.Day(today)

	for _, ch := range channelIDs {
		rows := make([]domain.MetricRecord, 0, seedBatch)
		flush := func() error {
			if len(rows) == 0 {
				return nil
			}
			if _, err := repo.UpsertMetrics(ctx, ch, rows); err != nil {
				return fmt.Errorf("seed channel %d: %w", ch, err)
			}
			rows = rows[:0]
			return nil
		}

		for _, c := range seedCampaigns {
			ext := uuid.NewString()
			for d := SeedDays - 1; d >= 0; d-- {
				rows = append(rows, randomDay(r, ext, c.name, c.status, today.AddDate(0, 0, -d)))
				if len(rows) == seedBatch {
					if err := flush(); err != nil {
						return err
					}
				}
			}
		}
		if err := flush(); err != nil {
			return err
		}
	}
	return nil
}

func randomDay(r *rand.Rand, ext, name, status string, day time.Time) domain.MetricRecord {
	impressions := int64(500 + r.Intn(5000))
	clicks := impressions * int64(1+r.Intn(8)) / 100
	conversions := clicks * int64(r.Intn(15)) / 100
	// cpc between 0.20 and 2.20
	cost := decimal.NewFromInt(clicks).Mul(decimal.New(int64(20+r.Intn(200)), -2))
	value := decimal.NewFromInt(conversions).Mul(decimal.New(int64(1000+r.Intn(9000)), -2))
	return domain.MetricRecord{
		CampaignExternalID: ext,
		CampaignName:       name,
		CampaignStatus:     status,
		Date:               day,
		Impressions:        impressions,
		Clicks:             clicks,
		Conversions:        conversions,
		Cost:               cost,
		ConversionValue:    value,
	}
}
