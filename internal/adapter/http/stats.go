package httpadapter

import (
	"net/http"

	"ad-metrics-hub/internal/core/domain"
)

// handleWidgetStats returns the channel summary for the requested range.
// Invalid parameters result in HTTP 400, an unknown channel in HTTP 404.
func (h *Handler) handleWidgetStats(w http.ResponseWriter, r *http.Request) {
	req, err := parseStatsReq(r, false)
	if err != nil {
		h.badRequest(w, r, err.Error())
		return
	}
	stats, err := h.svc.WidgetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// handleCampaignGraph returns per-campaign series of the metric query
// parameter (IMPRESSIONS, CLICKS or CONVERSIONS).
func (h *Handler) handleCampaignGraph(w http.ResponseWriter, r *http.Request) {
	req, err := parseStatsReq(r, true)
	if err != nil {
		h.badRequest(w, r, err.Error())
		return
	}
	stats, err := h.svc.CampaignGraph(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// handleCampaignTable returns one comparison row per campaign.
func (h *Handler) handleCampaignTable(w http.ResponseWriter, r *http.Request) {
	req, err := parseStatsReq(r, false)
	if err != nil {
		h.badRequest(w, r, err.Error())
		return
	}
	rows, err := h.svc.CampaignTable(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if rows == nil {
		rows = []domain.CampaignTableRow{}
	}
	h.writeJSON(w, http.StatusOK, rows)
}
