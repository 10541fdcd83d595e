package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New("hub")

	m.ObserveBuild("table", 12, 30*time.Millisecond)
	m.ObserveBuild("table", 3, 10*time.Millisecond)
	m.ObserveIngest(7)

	assert.Equal(t, float64(15), testutil.ToFloat64(m.RecordsAnalyzed.WithLabelValues("table")))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.RecordsIngested))
	assert.Equal(t, 1, testutil.CollectAndCount(m.BuildDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveBuild("widget", 1, time.Second)
	m.ObserveIngest(1)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	rec := httptest.NewRecorder()
	m.Middleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New("hub")
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/channels/{id}", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("x")) })
	r.Handle("/metrics", m.Handler())

	for _, id := range []string{"1", "5"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/channels/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/channels/{id}", "200")))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "hub_http_request_duration_seconds")
	assert.Contains(t, string(body), "go_goroutines")
}
