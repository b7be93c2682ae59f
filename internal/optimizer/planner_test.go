package optimizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
)

func intPtr(v int) *int { return &v }

// firstPick always selects the cheapest shortlist entry.
func firstPick(n int) int { return 0 }

func candidates() []domain.CandidateItem {
	return []domain.CandidateItem{
		{ID: "A", Name: "Gold Chain", BasePrice: 100_000, MarketPrice: intPtr(50_000), Quantity: 2},
		{ID: "B", Name: "Antique Vase", BasePrice: 250_000, MarketPrice: intPtr(300_000), Quantity: 1},
		{ID: "C", Name: "Silver Badge", BasePrice: 50_000, MarketPrice: intPtr(10_000), Quantity: 3},
	}
}

func TestPlan_ExampleScenario(t *testing.T) {
	p := NewPlannerWithRNG(firstPick)
	ctx := context.Background()

	result, err := p.Plan(ctx, candidates(), 400_000, 5)
	require.NoError(t, err)
	require.NotNil(t, result)

	// Cheapest combination in the window is B + 3xC: 400000 base for 330000.
	assert.Equal(t, 400_000, result.TotalBaseValue)
	assert.Equal(t, 330_000, result.TotalMarketValue)
	require.Len(t, result.Selected, 2)

	byID := map[string]domain.SelectedItem{}
	for _, s := range result.Selected {
		byID[s.ID] = s
	}
	assert.Equal(t, 1, byID["B"].Quantity)
	assert.Equal(t, 3, byID["C"].Quantity)
}

func TestPlan_FeasibilityWindow(t *testing.T) {
	p := NewPlanner()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		result, err := p.Plan(ctx, candidates(), 400_000, 5)
		require.NoError(t, err)
		if result.Empty() {
			t.Fatal("expected a feasible combination")
		}
		assert.GreaterOrEqual(t, result.TotalBaseValue, 400_000)
		assert.LessOrEqual(t, result.TotalBaseValue, 400_000+OvershootAllowance)
	}
}

func TestPlan_UnitCapAndAvailability(t *testing.T) {
	p := NewPlanner()
	ctx := context.Background()
	items := candidates()

	available := map[string]int{}
	for _, it := range items {
		available[it.ID] = it.Quantity
	}

	for i := 0; i < 25; i++ {
		result, err := p.Plan(ctx, items, 400_000, 5)
		require.NoError(t, err)

		totalUnits := 0
		for _, s := range result.Selected {
			totalUnits += s.Quantity
			assert.LessOrEqual(t, s.Quantity, available[s.ID], "selected more than offered for %s", s.ID)
			assert.Positive(t, s.Quantity)
		}
		assert.LessOrEqual(t, totalUnits, 5)
	}
}

func TestPlan_TotalsMatchSelection(t *testing.T) {
	p := NewPlanner()
	ctx := context.Background()

	result, err := p.Plan(ctx, candidates(), 400_000, 5)
	require.NoError(t, err)
	require.False(t, result.Empty())

	base, market := 0, 0
	for _, s := range result.Selected {
		base += s.BasePrice * s.Quantity
		market += s.MarketPrice * s.Quantity
	}
	assert.Equal(t, base, result.TotalBaseValue)
	assert.Equal(t, market, result.TotalMarketValue)
}

func TestPlan_EmptyInput(t *testing.T) {
	p := NewPlanner()

	result, err := p.Plan(context.Background(), nil, 400_000, 5)
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Zero(t, result.TotalBaseValue)
	assert.Zero(t, result.TotalMarketValue)
}

func TestPlan_UnreachableTarget(t *testing.T) {
	p := NewPlanner()
	items := []domain.CandidateItem{
		{ID: "A", BasePrice: 10_000, MarketPrice: intPtr(500), Quantity: 3},
	}

	// Best achievable is 3 x 10000 = 30000, far below the target.
	result, err := p.Plan(context.Background(), items, 400_000, 5)
	require.NoError(t, err)
	assert.True(t, result.Empty())
}

func TestPlan_UnknownMarketPriceExcluded(t *testing.T) {
	p := NewPlanner()
	items := []domain.CandidateItem{
		{ID: "A", BasePrice: 900_000, MarketPrice: nil, Quantity: 5},
	}

	result, err := p.Plan(context.Background(), items, 100_000, 5)
	require.NoError(t, err)
	assert.True(t, result.Empty())
}

func TestPlan_ZeroTarget(t *testing.T) {
	// Collection starts at one unit, so a zero target still returns the
	// cheapest non-empty combination rather than the empty set.
	p := NewPlannerWithRNG(firstPick)
	items := []domain.CandidateItem{
		{ID: "A", BasePrice: 1000, MarketPrice: intPtr(400), Quantity: 2},
		{ID: "B", BasePrice: 2000, MarketPrice: intPtr(100), Quantity: 1},
	}

	result, err := p.Plan(context.Background(), items, 0, 5)
	require.NoError(t, err)
	require.False(t, result.Empty())
	assert.Equal(t, 100, result.TotalMarketValue)
	require.Len(t, result.Selected, 1)
	assert.Equal(t, "B", result.Selected[0].ID)
	assert.Equal(t, 1, result.Selected[0].Quantity)
}

func TestPlan_NearOptimality(t *testing.T) {
	// Distinct base values keep each one-unit combination in its own DP
	// cell; the shortlist holds all five and no pick may ever cost more
	// than the fifth-cheapest entry.
	items := []domain.CandidateItem{
		{ID: "a", BasePrice: 1000, MarketPrice: intPtr(10), Quantity: 1},
		{ID: "b", BasePrice: 2000, MarketPrice: intPtr(12), Quantity: 1},
		{ID: "c", BasePrice: 3000, MarketPrice: intPtr(14), Quantity: 1},
		{ID: "d", BasePrice: 4000, MarketPrice: intPtr(16), Quantity: 1},
		{ID: "e", BasePrice: 5000, MarketPrice: intPtr(18), Quantity: 1},
	}
	p := NewPlanner()

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		result, err := p.Plan(context.Background(), items, 1000, 1)
		require.NoError(t, err)
		require.False(t, result.Empty())
		assert.LessOrEqual(t, result.TotalMarketValue, 18)
		seen[result.TotalMarketValue] = true
	}
	// Randomized tie-break should surface more than one shortlist entry.
	assert.Greater(t, len(seen), 1)
}

func TestPlan_ShortlistDrawsAreUniformOverIndices(t *testing.T) {
	// Pin the rng to each shortlist slot and verify ascending costs.
	items := []domain.CandidateItem{
		{ID: "a", BasePrice: 1000, MarketPrice: intPtr(10), Quantity: 1},
		{ID: "b", BasePrice: 2000, MarketPrice: intPtr(12), Quantity: 1},
		{ID: "c", BasePrice: 3000, MarketPrice: intPtr(14), Quantity: 1},
	}

	costs := make([]int, 0, 3)
	for slot := 0; slot < 3; slot++ {
		slot := slot
		p := NewPlannerWithRNG(func(n int) int { return slot % n })
		result, err := p.Plan(context.Background(), items, 1000, 1)
		require.NoError(t, err)
		costs = append(costs, result.TotalMarketValue)
	}
	assert.Equal(t, []int{10, 12, 14}, costs)
}

func TestPlan_DefaultMaxUnits(t *testing.T) {
	p := NewPlannerWithRNG(firstPick)
	items := []domain.CandidateItem{
		{ID: "A", BasePrice: 100_000, MarketPrice: intPtr(1000), Quantity: 10},
	}

	// maxUnits 0 falls back to the default of five units.
	result, err := p.Plan(context.Background(), items, 500_000, 0)
	require.NoError(t, err)
	require.False(t, result.Empty())
	assert.Equal(t, 500_000, result.TotalBaseValue)
	require.Len(t, result.Selected, 1)
	assert.Equal(t, 5, result.Selected[0].Quantity)
}

func TestPlan_NegativeInputsRejected(t *testing.T) {
	p := NewPlanner()
	ctx := context.Background()

	_, err := p.Plan(ctx, candidates(), -1, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := []domain.CandidateItem{{ID: "A", BasePrice: -5, MarketPrice: intPtr(10), Quantity: 1}}
	_, err = p.Plan(ctx, bad, 100, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = []domain.CandidateItem{{ID: "A", BasePrice: 5, MarketPrice: intPtr(-10), Quantity: 1}}
	_, err = p.Plan(ctx, bad, 100, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = []domain.CandidateItem{{ID: "A", BasePrice: 5, MarketPrice: intPtr(10), Quantity: -1}}
	_, err = p.Plan(ctx, bad, 100, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlan_TableSizeGuards(t *testing.T) {
	p := NewPlanner()
	ctx := context.Background()

	_, err := p.Plan(ctx, candidates(), 100_000, MaxUnitsCap+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = p.Plan(ctx, candidates(), MaxValueCeiling, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlan_InputNotMutated(t *testing.T) {
	p := NewPlanner()
	items := candidates()
	snapshot := make([]domain.CandidateItem, len(items))
	copy(snapshot, items)

	_, err := p.Plan(context.Background(), items, 400_000, 5)
	require.NoError(t, err)

	for i := range items {
		assert.Equal(t, snapshot[i].ID, items[i].ID)
		assert.Equal(t, snapshot[i].Quantity, items[i].Quantity)
		assert.Equal(t, snapshot[i].BasePrice, items[i].BasePrice)
	}
}
