package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field validation failures
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer; once headers are out an encode error
	// can only be logged.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages clients can act on. Internal detail never leaks through here.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		var invalid *domain.InvalidArgumentError
		if errors.As(err, &invalid) {
			return http.StatusBadRequest, invalid.Error()
		}
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFound
	case errors.Is(err, domain.ErrPlayerAlreadyExists):
		return http.StatusConflict, ErrMsgPlayerAlreadyExists
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFound
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFound
	case errors.Is(err, domain.ErrQuestNotEligible):
		return http.StatusConflict, ErrMsgQuestNotEligible
	case errors.Is(err, domain.ErrQuestAlreadyClaimed):
		return http.StatusConflict, ErrMsgQuestAlreadyClaimed
	case errors.Is(err, domain.ErrThemeNotFound):
		return http.StatusNotFound, ErrMsgThemeNotFound
	case errors.Is(err, domain.ErrSkinNotFound):
		return http.StatusNotFound, ErrMsgSkinNotFound
	case errors.Is(err, domain.ErrCosmeticLocked):
		return http.StatusConflict, ErrMsgCosmeticLocked
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError maps a service error and writes the response
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}
