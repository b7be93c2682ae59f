package handler

import (
	"net/http"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
	"github.com/sablemoor/RitualBot_Go/internal/logger"
	"github.com/sablemoor/RitualBot_Go/internal/ritual"
)

// PlanRequest is the body for planning an offering from known items.
// Exactly one of policy or target_value selects the threshold; policy wins
// when both are set.
type PlanRequest struct {
	UserID      string                 `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Items       []domain.CandidateItem `json:"items" validate:"required,dive"`
	Policy      string                 `json:"policy" validate:"omitempty,policy"`
	TargetValue int                    `json:"target_value" validate:"gte=0"`
	MaxUnits    int                    `json:"max_units" validate:"gte=0,lte=12"`
}

// ScanRequest is the body for planning straight from a screenshot.
type ScanRequest struct {
	UserID      string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Image       string `json:"image" validate:"required"`
	Policy      string `json:"policy" validate:"omitempty,policy"`
	TargetValue int    `json:"target_value" validate:"gte=0"`
	MaxUnits    int    `json:"max_units" validate:"gte=0,lte=12"`
}

// HandlePlan computes the cheapest offering clearing the requested threshold
// @Summary Plan a ritual offering
// @Description Computes the cheapest item combination meeting the base-value threshold. An empty selection means no feasible combination existed.
// @Tags ritual
// @Accept json
// @Produce json
// @Param request body PlanRequest true "Candidate items and threshold"
// @Success 200 {object} domain.RitualPlan
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Cooldown"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ritual/plan [post]
func HandlePlan(svc ritual.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PlanRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Plan offering"); err != nil {
			return
		}

		plan, err := svc.PlanFromItems(r.Context(), ritual.PlanRequest{
			UserID:      req.UserID,
			Items:       req.Items,
			PolicyKey:   req.Policy,
			TargetValue: req.TargetValue,
			MaxUnits:    req.MaxUnits,
		})
		if err != nil {
			respondServiceError(w, r, "plan offering", err)
			return
		}

		log.Info("Offering planned",
			"user_id", req.UserID,
			"selected", len(plan.Selected))

		respondJSON(w, http.StatusOK, plan)
	}
}

// HandleScan plans an offering from a stash screenshot
// @Summary Scan a screenshot and plan an offering
// @Description Runs OCR on the screenshot, resolves catalog items, then plans an offering from them.
// @Tags ritual
// @Accept json
// @Produce json
// @Param request body ScanRequest true "Base64 screenshot and threshold"
// @Success 200 {object} ritual.ScanResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Cooldown"
// @Failure 503 {object} ErrorResponse "OCR backend unavailable"
// @Router /api/v1/ritual/scan [post]
func HandleScan(svc ritual.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ScanRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Scan screenshot"); err != nil {
			return
		}

		result, err := svc.PlanFromImage(r.Context(), ritual.ScanRequest{
			UserID:      req.UserID,
			ImageBase64: req.Image,
			PolicyKey:   req.Policy,
			TargetValue: req.TargetValue,
			MaxUnits:    req.MaxUnits,
		})
		if err != nil {
			respondServiceError(w, r, "scan screenshot", err)
			return
		}

		log.Info("Screenshot scanned",
			"user_id", req.UserID,
			"candidates", len(result.Candidates),
			"selected", len(result.Plan.Selected))

		respondJSON(w, http.StatusOK, result)
	}
}

// PoliciesResponse lists the available threshold policies.
type PoliciesResponse struct {
	Policies []domain.ThresholdPolicy `json:"policies"`
}

// HandlePolicies returns the built-in threshold policies
// @Summary List threshold policies
// @Tags ritual
// @Produce json
// @Success 200 {object} PoliciesResponse
// @Router /api/v1/ritual/policies [get]
func HandlePolicies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, PoliciesResponse{Policies: domain.ThresholdPolicies})
	}
}
