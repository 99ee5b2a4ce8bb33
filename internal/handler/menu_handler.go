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

// MenuHandler handles menu catalog HTTP requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// GetAll handles GET /api/menu requests.
func (h *MenuHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	items, err := h.service.GetMenu(r.Context())
	if err != nil {
		writeDomainError(w, r, err, "failed to retrieve menu", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetByID handles GET /api/menu/{id} requests.
func (h *MenuHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/menu/")
	itemID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "invalid menu item ID format", h.logger)
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		writeDomainError(w, r, err, "failed to retrieve menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /api/menu requests.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	var req model.CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, "failed to create menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Delete handles DELETE /api/menu requests. The payload must carry an
// explicit confirmation.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	var req model.DeleteMenuItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	deleted, err := h.service.DeleteItems(r.Context(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "required") {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, err.Error(), h.logger)
			return
		}
		writeDomainError(w, r, err, "failed to delete menu items", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
