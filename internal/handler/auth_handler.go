package handler

import (
	"encoding/json"
	"net/http"

	"cafe-pos/internal/model"
	"cafe-pos/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles administrator login requests.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /api/login requests. A successful login returns the
// session token the administrative endpoints require.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeDomainError(w, r, err, "failed to verify credentials", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
