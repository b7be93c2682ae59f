package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sablemoor/RitualBot_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and runs
// struct-tag validation. If it returns an error the HTTP response has
// already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetQueryParam retrieves a required query parameter. If the parameter is
// missing the HTTP response has already been written and ok is false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}
