package handler

import (
	"net/http"
	"strconv"

	"cafe-pos/internal/model"
	"cafe-pos/internal/service"

	"github.com/rs/zerolog"
)

// AnalyticsHandler handles sales reporting HTTP requests.
type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  zerolog.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service service.AnalyticsService, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger.With().Str("handler", "analytics").Logger(),
	}
}

// Summary handles GET /api/analytics/summary requests.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeDomainError(w, r, err, "failed to retrieve sales summary", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// TopItems handles GET /api/analytics/top-items requests.
func (h *AnalyticsHandler) TopItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	n := 0
	if nStr := r.URL.Query().Get("n"); nStr != "" {
		var err error
		n, err = strconv.Atoi(nStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "invalid n parameter", h.logger)
			return
		}
	}

	items, err := h.service.TopItems(r.Context(), n)
	if err != nil {
		writeDomainError(w, r, err, "failed to retrieve top items", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// SalesByCategory handles GET /api/analytics/categories requests.
func (h *AnalyticsHandler) SalesByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	results, err := h.service.SalesByCategory(r.Context())
	if err != nil {
		writeDomainError(w, r, err, "failed to retrieve sales by category", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// Weekly handles GET /api/analytics/weekly requests.
func (h *AnalyticsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	results, err := h.service.TrailingWeekSales(r.Context())
	if err != nil {
		writeDomainError(w, r, err, "failed to retrieve weekly sales", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, results)
}
