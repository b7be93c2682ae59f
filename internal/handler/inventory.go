package handler

import (
	"net/http"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
	"github.com/sablemoor/RitualBot_Go/internal/logger"
	"github.com/sablemoor/RitualBot_Go/internal/ritual"
)

// ResolveRequest is the body for resolving stash items without planning.
// Provide either a base64 screenshot or raw transcript text.
type ResolveRequest struct {
	Image string `json:"image" validate:"required_without=Text"`
	Text  string `json:"text" validate:"required_without=Image"`
}

// ResolveResponse lists the recognized candidate items.
type ResolveResponse struct {
	Candidates []domain.CandidateItem `json:"candidates"`
}

// HandleResolve recognizes stash items from a screenshot or transcript
// @Summary Resolve inventory items
// @Description Resolves catalog items from a base64 screenshot (via OCR) or from raw transcript text.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "Screenshot or transcript text"
// @Success 200 {object} ResolveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "OCR backend unavailable"
// @Router /api/v1/inventory/resolve [post]
func HandleResolve(svc ritual.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ResolveRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Resolve items"); err != nil {
			return
		}

		var (
			candidates []domain.CandidateItem
			err        error
		)
		if req.Image != "" {
			candidates, err = svc.ResolveImage(r.Context(), req.Image)
		} else {
			candidates, err = svc.ResolveText(r.Context(), req.Text)
		}
		if err != nil {
			respondServiceError(w, r, "resolve items", err)
			return
		}

		log.Info("Items resolved", "candidates", len(candidates))

		respondJSON(w, http.StatusOK, ResolveResponse{Candidates: candidates})
	}
}
