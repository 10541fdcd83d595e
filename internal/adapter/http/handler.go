package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ad-metrics-hub/internal/core/port"
	"ad-metrics-hub/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a StatsUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.StatsUseCase
	logger *slog.Logger
	router chi.Router

	metrics     *metrics.Metrics
	metricsPath string

	maxIngestBody int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithMetrics instruments every route and serves m at path. An empty path
// keeps the instrumentation but hides the endpoint.
func WithMetrics(m *metrics.Metrics, path string) Option {
	return func(h *Handler) {
		h.metrics = m
		h.metricsPath = path
	}
}

// WithMaxIngestBody limits the size of a metrics upload in bytes.
func WithMaxIngestBody(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxIngestBody = n
		}
	}
}

// NewHandler creates a handler with all routes configured. It accepts a
// StatsUseCase implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.StatsUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger, maxIngestBody: defaultMaxIngestBody}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(h.metrics.Middleware)

	r.Get("/healthz", h.handleHealth)
	if h.metrics != nil && h.metricsPath != "" {
		r.Handle(h.metricsPath, h.metrics.Handler())
	}

	r.Route("/api/v1/ads", func(r chi.Router) {
		r.Get("/widget-ads-stats", h.handleWidgetStats)
		r.Get("/campaign-ads-stats", h.handleCampaignGraph)
		r.Get("/campaign-ads-table", h.handleCampaignTable)
		r.Post("/channels/{channelID}/metrics", h.handleIngest)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
