package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ad-metrics-hub/internal/core/domain"
	"ad-metrics-hub/internal/core/period"
	"ad-metrics-hub/internal/core/port"
)

// parseStatsReq reads the query parameters shared by the stats endpoints:
// marketingChannelId, either dateRange or startDate+endDate, and an
// optional comma separated status list. metric is read only when
// withMetric is set.
func parseStatsReq(r *http.Request, withMetric bool) (port.StatsReq, error) {
	q := r.URL.Query()

	var req port.StatsReq
	raw := q.Get("marketingChannelId")
	if raw == "" {
		return req, fmt.Errorf("marketingChannelId is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return req, fmt.Errorf("invalid marketingChannelId %q", raw)
	}
	req.ChannelID = id

	req.Range = period.Request{
		Filter: q.Get("dateRange"),
		Start:  q.Get("startDate"),
		End:    q.Get("endDate"),
	}
	req.Statuses = splitList(q["status"])

	if withMetric {
		m, err := domain.ParseMetricFilter(q.Get("metric"))
		if err != nil {
			return req, fmt.Errorf("%w: %q", err, q.Get("metric"))
		}
		req.Metric = m
	}
	return req, nil
}

// splitList accepts both ?status=A,B and ?status=A&status=B.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
