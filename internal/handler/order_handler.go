package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"cafe-pos/internal/model"
	"cafe-pos/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	resp, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, "failed to create order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// CalculateBill handles POST /api/bills requests: it prices an order without
// persisting anything.
func (h *OrderHandler) CalculateBill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	bill, skipped, err := h.service.CalculateBill(r.Context(), req.Items)
	if err != nil {
		writeDomainError(w, r, err, "failed to calculate bill", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Bill    interface{}         `json:"bill"`
		Skipped []model.SkippedLine `json:"skipped,omitempty"`
	}{Bill: bill, Skipped: skipped})
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	orderID, ok := h.orderIDFromPath(w, r)
	if !ok {
		return
	}

	detail, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, r, err, "failed to retrieve order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// List handles GET /api/orders requests with pagination.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "invalid limit parameter", h.logger)
			return
		}
	}

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "invalid offset parameter", h.logger)
			return
		}
	}

	entries, err := h.service.ListLedger(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, r, err, "failed to list orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Delete handles DELETE /api/orders requests. The payload selects orders by
// ID or the whole ledger, and must carry an explicit confirmation.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	var req model.DeleteOrdersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	deleted, err := h.service.DeleteOrders(r.Context(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "required") {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, err.Error(), h.logger)
			return
		}
		writeDomainError(w, r, err, "failed to delete orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// SaveReceipt handles POST /api/orders/{id}/receipt requests.
func (h *OrderHandler) SaveReceipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/orders/{id}/receipt
	path := strings.TrimSuffix(r.URL.Path, "/receipt")
	idStr := strings.TrimPrefix(path, "/api/orders/")
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "invalid order ID format", h.logger)
		return
	}

	receiptPath, err := h.service.SaveReceipt(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, r, err, "failed to save receipt", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"path": receiptPath})
}

// orderIDFromPath extracts the order ID from a /api/orders/{id} path.
func (h *OrderHandler) orderIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if idStr == "" || idStr == r.URL.Path {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "order ID is required", h.logger)
		return 0, false
	}

	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "invalid order ID format", h.logger)
		return 0, false
	}

	return orderID, true
}
