package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWith(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.False(t, cfg.Store.IsMemory())
	assert.False(t, cfg.Store.Seed)
	assert.Equal(t, 60, cfg.Stats.MonthlyThresholdDays)
	assert.Equal(t, []string{"ENABLED", "ACTIVE"}, cfg.Stats.ActiveStatuses)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadWith(env.Options{Environment: map[string]string{
		"HTTP_PORT":                    "9090",
		"LOG_FORMAT":                   "JSON",
		"STORE_DRIVER":                 "memory",
		"STORE_SEED":                   "true",
		"STATS_ACTIVE_STATUSES":        "ENABLED",
		"STATS_MONTHLY_THRESHOLD_DAYS": "31",
		"STATS_TIMEZONE":               "Europe/Berlin",
	}})
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Store.IsMemory())
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, []string{"ENABLED"}, cfg.Stats.ActiveStatuses)
	assert.Equal(t, 31, cfg.Stats.MonthlyThresholdDays)

	loc, err := cfg.Stats.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]map[string]string{
		"driver":    {"STORE_DRIVER": "mongo"},
		"threshold": {"STATS_MONTHLY_THRESHOLD_DAYS": "0"},
		"timezone":  {"STATS_TIMEZONE": "Mars/Olympus"},
		"port":      {"HTTP_PORT": "http"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadWith(env.Options{Environment: vars})
			assert.Error(t, err)
		})
	}
}
