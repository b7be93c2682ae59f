package optimizer

import (
	"context"
	"fmt"
	"sort"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
	"github.com/sablemoor/RitualBot_Go/internal/logger"
	"github.com/sablemoor/RitualBot_Go/internal/utils"
)

// Planner computes the cheapest ritual offering that meets a base-value
// target within the overshoot window, using at most maxUnits item units.
// An empty selection with zero totals means no feasible combination exists;
// that is a valid outcome, not an error.
type Planner interface {
	Plan(ctx context.Context, items []domain.CandidateItem, targetValue, maxUnits int) (*domain.SelectionResult, error)
}

type planner struct {
	rng func(n int) int // returns [0, n); injectable for testing
}

// NewPlanner creates a planner with the default random source.
func NewPlanner() Planner {
	return &planner{rng: utils.RandomIntn}
}

// NewPlannerWithRNG creates a planner with a custom random source.
func NewPlannerWithRNG(rng func(int) int) Planner {
	return &planner{rng: rng}
}

// unit is one individual instance of a candidate item, post-expansion.
type unit struct {
	itemIdx     int // index into the caller's candidate slice
	basePrice   int
	marketPrice int
}

// combo is one feasible (count, value) cell with its minimum market cost.
type combo struct {
	count int
	value int
	cost  int
}

// infeasible marks DP cells no combination reaches. Real costs are >= 0.
const infeasible = -1

func (p *planner) Plan(ctx context.Context, items []domain.CandidateItem, targetValue, maxUnits int) (*domain.SelectionResult, error) {
	if maxUnits <= 0 {
		maxUnits = DefaultMaxUnits
	}
	if err := validate(items, targetValue, maxUnits); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	ceiling := targetValue + OvershootAllowance

	units := expand(items, maxUnits)
	if len(units) == 0 {
		log.Debug("No eligible units to plan with", "candidates", len(items))
		return emptyResult(), nil
	}

	cost, trace := fill(units, maxUnits, ceiling)

	feasible := collect(cost, targetValue, ceiling, maxUnits)
	if len(feasible) == 0 {
		log.Debug("No feasible combination",
			"target", targetValue, "units", len(units), "max_units", maxUnits)
		return emptyResult(), nil
	}

	// Cheapest first; ties broken on value then count so ordering is stable.
	sort.Slice(feasible, func(i, j int) bool {
		if feasible[i].cost != feasible[j].cost {
			return feasible[i].cost < feasible[j].cost
		}
		if feasible[i].value != feasible[j].value {
			return feasible[i].value < feasible[j].value
		}
		return feasible[i].count < feasible[j].count
	})

	shortlist := len(feasible)
	if shortlist > ShortlistSize {
		shortlist = ShortlistSize
	}
	pick := feasible[p.rng(shortlist)]

	return reconstruct(items, units, trace[pick.count][pick.value]), nil
}

// validate enforces the non-negative input preconditions and the table-size
// guards before any DP memory is allocated.
func validate(items []domain.CandidateItem, targetValue, maxUnits int) error {
	if targetValue < 0 {
		return fmt.Errorf("%w: target value must be non-negative", domain.ErrInvalidInput)
	}
	if maxUnits > MaxUnitsCap {
		return fmt.Errorf("%w: max units %d exceeds cap %d", domain.ErrInvalidInput, maxUnits, MaxUnitsCap)
	}
	if targetValue+OvershootAllowance > MaxValueCeiling {
		return fmt.Errorf("%w: target value %d exceeds ceiling %d", domain.ErrInvalidInput, targetValue, MaxValueCeiling-OvershootAllowance)
	}
	for _, it := range items {
		if it.Quantity < 0 || it.BasePrice < 0 || (it.MarketPrice != nil && *it.MarketPrice < 0) {
			return fmt.Errorf("%w: item %q has a negative quantity or price", domain.ErrInvalidInput, it.ID)
		}
	}
	return nil
}

// expand flattens candidates into unit entries. Items without a market price
// or without stock cannot participate. Per-item expansion is capped at
// maxUnits: no combination can use more units of one item than the global cap.
func expand(items []domain.CandidateItem, maxUnits int) []unit {
	var units []unit
	for i, it := range items {
		if it.Quantity <= 0 || !it.HasMarketPrice() {
			continue
		}
		n := it.Quantity
		if n > maxUnits {
			n = maxUnits
		}
		for k := 0; k < n; k++ {
			units = append(units, unit{itemIdx: i, basePrice: it.BasePrice, marketPrice: *it.MarketPrice})
		}
	}
	return units
}

// fill runs the bounded-knapsack DP. cost[c][v] is the minimum market cost of
// reaching exactly c units summing to exactly v base value; trace[c][v] holds
// the unit indices of one combination achieving it.
func fill(units []unit, maxUnits, ceiling int) ([][]int, [][][]int) {
	cost := make([][]int, maxUnits+1)
	trace := make([][][]int, maxUnits+1)
	for c := 0; c <= maxUnits; c++ {
		cost[c] = make([]int, ceiling+1)
		trace[c] = make([][]int, ceiling+1)
		for v := 0; v <= ceiling; v++ {
			cost[c][v] = infeasible
		}
	}
	cost[0][0] = 0

	for idx, u := range units {
		// Descending sweep keeps each unit 0/1: row c-1 still holds the
		// state from previous units when row c is updated.
		for c := maxUnits; c >= 1; c-- {
			for v := ceiling; v >= u.basePrice; v-- {
				prev := cost[c-1][v-u.basePrice]
				if prev == infeasible {
					continue
				}
				next := prev + u.marketPrice
				if cost[c][v] != infeasible && next >= cost[c][v] {
					continue
				}
				cost[c][v] = next
				path := make([]int, len(trace[c-1][v-u.basePrice])+1)
				copy(path, trace[c-1][v-u.basePrice])
				path[len(path)-1] = idx
				trace[c][v] = path
			}
		}
	}
	return cost, trace
}

// collect gathers every feasible cell meeting the target. Count starts at 1:
// even a zero target is answered with a real (non-empty) combination.
func collect(cost [][]int, targetValue, ceiling, maxUnits int) []combo {
	var out []combo
	for c := 1; c <= maxUnits; c++ {
		for v := targetValue; v <= ceiling; v++ {
			if cost[c][v] != infeasible {
				out = append(out, combo{count: c, value: v, cost: cost[c][v]})
			}
		}
	}
	return out
}

// reconstruct groups the chosen unit indices back into per-item entries and
// computes the aggregate totals from the grouped selection.
func reconstruct(items []domain.CandidateItem, units []unit, path []int) *domain.SelectionResult {
	counts := make(map[int]int, len(path))
	order := make([]int, 0, len(path))
	for _, idx := range path {
		itemIdx := units[idx].itemIdx
		if counts[itemIdx] == 0 {
			order = append(order, itemIdx)
		}
		counts[itemIdx]++
	}

	result := &domain.SelectionResult{Selected: make([]domain.SelectedItem, 0, len(order))}
	for _, itemIdx := range order {
		it := items[itemIdx]
		sel := domain.SelectedItem{
			ID:          it.ID,
			Name:        it.Name,
			IconURL:     it.IconURL,
			BasePrice:   it.BasePrice,
			MarketPrice: *it.MarketPrice,
			Quantity:    counts[itemIdx],
		}
		result.Selected = append(result.Selected, sel)
		result.TotalMarketValue += sel.MarketPrice * sel.Quantity
		result.TotalBaseValue += sel.BasePrice * sel.Quantity
	}
	return result
}

func emptyResult() *domain.SelectionResult {
	return &domain.SelectionResult{Selected: []domain.SelectedItem{}}
}
