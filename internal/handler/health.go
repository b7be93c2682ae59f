package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sablemoor/RitualBot_Go/internal/database"
	"github.com/sablemoor/RitualBot_Go/internal/logger"
	"github.com/sablemoor/RitualBot_Go/internal/ocr"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// readyTimeout bounds each dependency probe in the readiness check.
const readyTimeout = 2 * time.Second

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz provides a readiness check over the configured dependencies.
// Either dependency may be nil when not configured; a nil dependency is
// skipped rather than failed.
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (database and OCR backend reachable)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, ocrClient ocr.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if dbPool != nil {
			if err := dbPool.Ping(ctx); err != nil {
				log.Error("Readiness check failed", "dependency", "database", "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  "unavailable",
					Message: "database connection failed",
				})
				return
			}
		}

		if ocrClient != nil {
			if err := ocrClient.Health(ctx); err != nil {
				log.Error("Readiness check failed", "dependency", "ocr", "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  "unavailable",
					Message: "ocr backend unreachable",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
