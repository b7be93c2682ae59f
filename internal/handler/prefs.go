package handler

import (
	"net/http"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
	"github.com/sablemoor/RitualBot_Go/internal/logger"
	"github.com/sablemoor/RitualBot_Go/internal/prefs"
)

// PrefsRequest is the body for saving user preferences.
type PrefsRequest struct {
	UserID      string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Policy      string `json:"policy" validate:"required,policy"`
	MaxUnits    int    `json:"max_units" validate:"gte=1,lte=12"`
	Theme       string `json:"theme" validate:"omitempty,oneof=dark light"`
	AutoOCRScan bool   `json:"auto_ocr_scan"`
}

// HandleGetPrefs returns a user's saved preferences
// @Summary Get user preferences
// @Description Returns saved preferences, or the defaults for a user who has never saved any.
// @Tags prefs
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.Preferences
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/prefs [get]
func HandleGetPrefs(svc prefs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		p, err := svc.Get(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "get preferences", err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandlePutPrefs saves a user's preferences
// @Summary Save user preferences
// @Tags prefs
// @Accept json
// @Produce json
// @Param request body PrefsRequest true "Preferences"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/prefs [put]
func HandlePutPrefs(svc prefs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PrefsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save preferences"); err != nil {
			return
		}

		theme := req.Theme
		if theme == "" {
			theme = domain.DefaultPreferences(req.UserID).Theme
		}

		err := svc.Update(r.Context(), domain.Preferences{
			UserID:      req.UserID,
			PolicyKey:   req.Policy,
			MaxUnits:    req.MaxUnits,
			Theme:       theme,
			AutoOCRScan: req.AutoOCRScan,
		})
		if err != nil {
			respondServiceError(w, r, "save preferences", err)
			return
		}

		log.Info("Preferences saved", "user_id", req.UserID, "policy", req.Policy)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPrefsSavedSuccess})
	}
}
