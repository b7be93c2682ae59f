package ritual

import "time"

const (
	// ActionPlan is the cooldown key for offering planning.
	ActionPlan = "ritual_plan"

	// DefaultCooldown spaces repeated plan requests per user. The game's
	// ritual UI refreshes slower than this, so a tighter window only burns
	// optimizer time on duplicate requests.
	DefaultCooldown = 6 * time.Second
)
