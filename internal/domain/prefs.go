package domain

// Preferences are the per-user settings the UI persists between sessions.
type Preferences struct {
	UserID      string `json:"user_id"`
	PolicyKey   string `json:"policy_key"`
	MaxUnits    int    `json:"max_units"`
	Theme       string `json:"theme"`
	AutoOCRScan bool   `json:"auto_ocr_scan"`
}

// DefaultPreferences returns the settings a new user starts with.
func DefaultPreferences(userID string) Preferences {
	return Preferences{
		UserID:    userID,
		PolicyKey: PolicyStandard,
		MaxUnits:  5,
		Theme:     "dark",
	}
}
