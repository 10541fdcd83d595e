package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-metrics-hub/internal/adapter/memory"
	"ad-metrics-hub/internal/core/domain"
)

func TestSeedFillsChannels(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMetricRepository(memory.DefaultChannels()...)
	today := time.Date(2025, 10, 15, 18, 30, 0, 0, time.UTC)

	require.NoError(t, Seed(ctx, repo, today, 1, 5))

	all := domain.DateWindow{Start: today.AddDate(-2, 0, 0), End: today.AddDate(1, 0, 0)}
	got, err := repo.FetchMetrics(ctx, 1, all)
	require.NoError(t, err)
	assert.Len(t, got, SeedDays*len(seedCampaigns))

	first, last := got[0].Date, got[len(got)-1].Date
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), last)
	assert.Equal(t, last.AddDate(0, 0, -(SeedDays-1)), first)

	for _, r := range got {
		assert.LessOrEqual(t, r.Clicks, r.Impressions)
		assert.LessOrEqual(t, r.Conversions, r.Clicks)
		assert.False(t, r.Cost.IsNegative())
	}

	active, err := repo.FetchMetricsByStatus(ctx, 5, []string{domain.StatusEnabled, domain.StatusActive}, all)
	require.NoError(t, err)
	assert.Len(t, active, SeedDays*4)
}
