package optimizer

// Planning constants
const (
	// OvershootAllowance is the slack above the target value a combination may
	// reach. Base values are discrete, so an exact hit is not guaranteed and
	// "just over" combinations must stay in the search window.
	OvershootAllowance = 5000

	// DefaultMaxUnits is the global cap on offered units when the caller does
	// not supply one.
	DefaultMaxUnits = 5

	// ShortlistSize is how many of the cheapest feasible combinations the
	// final answer is drawn from at random.
	ShortlistSize = 5

	// MaxUnitsCap bounds the unit cap before the DP table is sized.
	MaxUnitsCap = 12

	// MaxValueCeiling bounds target+overshoot before the DP table is sized.
	MaxValueCeiling = 2_000_000
)
