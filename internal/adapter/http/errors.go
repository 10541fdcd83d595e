package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ad-metrics-hub/internal/core/domain"
	"ad-metrics-hub/internal/core/period"
	"ad-metrics-hub/internal/core/port"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// writeError maps usecase errors to status codes. Anything unrecognised is
// logged and reported as a bare 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, period.ErrInvalidRange),
		errors.Is(err, domain.ErrUnknownMetric),
		errors.Is(err, port.ErrInvalidRecord):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrUnknownChannel):
		status = http.StatusNotFound
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", slog.Any("error", err), slog.String("request_id", RequestIDFrom(r.Context())))
		msg = "internal error"
	}
	h.writeJSON(w, status, errorResponse{Error: msg, RequestID: RequestIDFrom(r.Context())})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, RequestID: RequestIDFrom(r.Context())})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
