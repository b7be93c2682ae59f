package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
	"github.com/sablemoor/RitualBot_Go/internal/logger"
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

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first so a marshal failure never produces a
	// half-written body.
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

// respondServiceError logs a failed service call and writes the mapped
// status and user message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error("Service call failed", "operation", opName, "error", err)
	} else {
		log.Warn("Service call rejected", "operation", opName, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgUnknownPolicyError  = "Unknown threshold policy"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgOnCooldownError     = "Planning is on cooldown. Try again in a few seconds"
	ErrMsgOCRUnavailableError = "Screenshot recognition is temporarily unavailable"
	ErrMsgPrefsNotFoundError  = "Preferences not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUnknownPolicy):
		return http.StatusBadRequest, ErrMsgUnknownPolicyError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrOCRUnavailable):
		return http.StatusServiceUnavailable, ErrMsgOCRUnavailableError
	case errors.Is(err, domain.ErrPrefsNotFound):
		return http.StatusNotFound, ErrMsgPrefsNotFoundError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
