package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ad-metrics-hub/internal/adapter/http"
	"ad-metrics-hub/internal/adapter/memory"
	"ad-metrics-hub/internal/adapter/postgres"
	"ad-metrics-hub/internal/adapter/usecase"
	"ad-metrics-hub/internal/config"
	"ad-metrics-hub/internal/core/period"
	"ad-metrics-hub/internal/core/port"
	"ad-metrics-hub/internal/db"
	"ad-metrics-hub/internal/metrics"
)

// main is the entry point of the metrics hub. It loads configuration,
// optionally runs database migrations, initializes the metric store and
// the stats usecase, then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.MetricRepository
	if cfg.Store.IsMemory() {
		repo = memory.NewMetricRepository(memory.DefaultChannels()...)
		logger.Info("using in-memory metric store")
	} else {
		// Optionally run migrations if configured. We use the Psql sub‑config.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewMetricRepository(pool)
	}

	loc, err := cfg.Stats.Location()
	if err != nil {
		logger.Error("invalid timezone", slog.Any("error", err))
		return
	}
	resolver := period.NewResolver(
		period.WithLocation(loc),
		period.WithMonthlyThreshold(cfg.Stats.MonthlyThresholdDays),
	)

	if cfg.Store.Seed {
		if err = db.Seed(ctx, repo, resolver.Today(), channelIDs()...); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded", slog.Int("days", db.SeedDays))
	}

	m := metrics.New("ad_metrics_hub")
	svc := usecase.NewStatsUseCase(repo, resolver,
		usecase.WithDefaultStatuses(cfg.Stats.ActiveStatuses),
		usecase.WithLogger(logger),
		usecase.WithMetrics(m),
	)

	handler := httpadapter.NewHandler(svc, logger, httpadapter.WithMetrics(m, cfg.HTTP.MetricsPath))
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

func channelIDs() []int64 {
	channels := memory.DefaultChannels()
	ids := make([]int64, len(channels))
	for i, ch := range channels {
		ids[i] = ch.ID
	}
	return ids
}
