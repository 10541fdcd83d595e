package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"ad-metrics-hub/internal/core/domain"
	"ad-metrics-hub/internal/core/period"
)

// defaultMaxIngestBody caps the request body of a metrics upload.
const defaultMaxIngestBody = 8 << 20

// metricRow is the wire form of one daily campaign record.
type metricRow struct {
	CampaignID      string          `json:"campaignId"`
	CampaignName    string          `json:"campaignName"`
	Status          string          `json:"status"`
	Date            string          `json:"date"`
	Impressions     int64           `json:"impressions"`
	Clicks          int64           `json:"clicks"`
	Conversions     int64           `json:"conversions"`
	Cost            decimal.Decimal `json:"cost"`
	ConversionValue decimal.Decimal `json:"conversionValue"`
}

func (m metricRow) record() (domain.MetricRecord, error) {
	d, err := time.Parse(period.DateLayout, m.Date)
	if err != nil {
		return domain.MetricRecord{}, fmt.Errorf("invalid date %q", m.Date)
	}
	return domain.MetricRecord{
		CampaignExternalID: m.CampaignID,
		CampaignName:       m.CampaignName,
		CampaignStatus:     m.Status,
		Date:               d,
		Impressions:        m.Impressions,
		Clicks:             m.Clicks,
		Conversions:        m.Conversions,
		Cost:               m.Cost,
		ConversionValue:    m.ConversionValue,
	}, nil
}

type ingestResponse struct {
	Upserted int `json:"upserted"`
}

// handleIngest upserts a JSON array of daily campaign records for the
// {channelID} path parameter. The batch is all or nothing.
func (h *Handler) handleIngest(w http.ResponseWriter, r *http.Request) {
	channelID, err := strconv.ParseInt(chi.URLParam(r, "channelID"), 10, 64)
	if err != nil || channelID <= 0 {
		h.badRequest(w, r, "invalid channel id")
		return
	}

	var body []metricRow
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxIngestBody))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Error:     fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
				RequestID: RequestIDFrom(r.Context()),
			})
			return
		}
		h.badRequest(w, r, "invalid JSON")
		return
	}

	rows := make([]domain.MetricRecord, 0, len(body))
	for i, m := range body {
		rec, err := m.record()
		if err != nil {
			h.badRequest(w, r, fmt.Sprintf("row %d: %v", i, err))
			return
		}
		rows = append(rows, rec)
	}

	n, err := h.svc.IngestMetrics(r.Context(), channelID, rows)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ingestResponse{Upserted: n})
}
