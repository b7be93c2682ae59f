package domain

// ThresholdPolicy names a ritual value threshold and the reward it earns.
// The game grants a longer ritual reward window when the offered base value
// clears a higher threshold.
type ThresholdPolicy struct {
	Key         string `json:"key"`
	TargetValue int    `json:"target_value"`
	RewardHours int    `json:"reward_hours"`
}

// Built-in threshold policies, lowest to highest.
var ThresholdPolicies = []ThresholdPolicy{
	{Key: PolicyMinimal, TargetValue: 100_000, RewardHours: 2},
	{Key: PolicyStandard, TargetValue: 350_000, RewardHours: 6},
	{Key: PolicyHigh, TargetValue: 400_000, RewardHours: 12},
}

// Policy keys
const (
	PolicyMinimal  = "minimal"
	PolicyStandard = "standard"
	PolicyHigh     = "high"
)

// PolicyByKey returns the named policy, or ErrUnknownPolicy.
func PolicyByKey(key string) (ThresholdPolicy, error) {
	for _, p := range ThresholdPolicies {
		if p.Key == key {
			return p, nil
		}
	}
	return ThresholdPolicy{}, ErrUnknownPolicy
}

// RewardHoursFor returns the reward hours for the highest threshold the
// achieved base value clears, or 0 when it clears none.
func RewardHoursFor(totalBaseValue int) int {
	hours := 0
	for _, p := range ThresholdPolicies {
		if totalBaseValue >= p.TargetValue {
			hours = p.RewardHours
		}
	}
	return hours
}

// RitualPlan is the full planning response: the chosen offering plus the
// target it was planned against and the reward that offering earns.
type RitualPlan struct {
	SelectionResult
	TargetValue int `json:"target_value"`
	RewardHours int `json:"reward_hours"`
}
