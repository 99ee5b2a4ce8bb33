package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cafe-pos/internal/middleware"
	"cafe-pos/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes a standardised error response with the given status code.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.CorrelationIDFromContext(r.Context())
	logger.Error().
		Str("error", message).
		Str("code", code).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeDomainError maps an error from the service layer to an HTTP response.
// DomainError codes carry their own status; anything else is a 500 with a
// generic message so internals never leak to clients.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, r, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, fallback, logger)
}

// statusForCode maps a domain error code to an HTTP status code.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidInput, model.ErrCodeInvalidJSON:
		return http.StatusBadRequest
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
