package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sablemoor/RitualBot_Go/internal/catalog"
	"github.com/sablemoor/RitualBot_Go/internal/ocr"
)

// stubPrices serves a fixed price table; names absent from the table are
// unlisted.
type stubPrices struct {
	table map[string]int
	err   error
	calls int
}

func (s *stubPrices) MarketPrice(_ context.Context, internalName string) (*int, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if price, ok := s.table[internalName]; ok {
		return &price, nil
	}
	return nil, nil
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Entry{
		{InternalName: "gold_chain", DisplayName: "Gold Chain", BaseValue: 100_000, Aliases: []string{"chain"}},
		{InternalName: "antique_vase", DisplayName: "Antique Vase", BaseValue: 250_000},
		{InternalName: "silver_badge", DisplayName: "Silver Badge", BaseValue: 50_000},
		{InternalName: "gp_coin", DisplayName: "GP Coin", BaseValue: 15_000},
	})
}

func words(texts ...string) *ocr.Transcript {
	t := &ocr.Transcript{}
	for _, s := range texts {
		t.Words = append(t.Words, ocr.Word{Text: s})
	}
	return t
}

func TestResolve_MultiWordAndStackCount(t *testing.T) {
	prices := &stubPrices{table: map[string]int{"gold_chain": 50_000, "silver_badge": 10_000}}
	r, err := New(testCatalog(), prices)
	require.NoError(t, err)

	items, err := r.Resolve(context.Background(), words("Gold", "Chain", "x2", "Silver", "Badge"))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "gold_chain", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 100_000, items[0].BasePrice)
	require.NotNil(t, items[0].MarketPrice)
	assert.Equal(t, 50_000, *items[0].MarketPrice)

	assert.Equal(t, "silver_badge", items[1].ID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestResolve_FuzzyMatchesOCRNoise(t *testing.T) {
	prices := &stubPrices{table: map[string]int{"antique_vase": 1}}
	r, err := New(testCatalog(), prices)
	require.NoError(t, err)

	// "AntiqueVaze" is one edit away from the normalized catalog name.
	items, err := r.Resolve(context.Background(), words("AntiqueVaze"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "antique_vase", items[0].ID)
}

func TestResolve_AliasHit(t *testing.T) {
	prices := &stubPrices{table: map[string]int{}}
	r, err := New(testCatalog(), prices)
	require.NoError(t, err)

	items, err := r.Resolve(context.Background(), words("chain"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "gold_chain", items[0].ID)
	assert.Nil(t, items[0].MarketPrice)
}

func TestResolve_RepeatedItemAccumulates(t *testing.T) {
	prices := &stubPrices{table: map[string]int{}}
	r, err := New(testCatalog(), prices)
	require.NoError(t, err)

	items, err := r.Resolve(context.Background(), words("chain", "x2", "chain", "3"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestResolve_UnknownTokensSkipped(t *testing.T) {
	prices := &stubPrices{table: map[string]int{}}
	r, err := New(testCatalog(), prices)
	require.NoError(t, err)

	items, err := r.Resolve(context.Background(), words("completely", "unrelated", "garbage"))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestResolve_FallsBackToFlatText(t *testing.T) {
	prices := &stubPrices{table: map[string]int{}}
	r, err := New(testCatalog(), prices)
	require.NoError(t, err)

	items, err := r.Resolve(context.Background(), &ocr.Transcript{Text: "Silver Badge x3"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "silver_badge", items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestResolve_PriceLookupFailureDegrades(t *testing.T) {
	prices := &stubPrices{err: errors.New("price backend down")}
	r, err := New(testCatalog(), prices)
	require.NoError(t, err)

	items, err := r.Resolve(context.Background(), words("chain"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].MarketPrice)
}

func TestResolve_NilTranscript(t *testing.T) {
	r, err := New(testCatalog(), &stubPrices{})
	require.NoError(t, err)

	items, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestParseStackCount(t *testing.T) {
	cases := map[string]struct {
		n  int
		ok bool
	}{
		"x2":    {2, true},
		"3x":    {3, true},
		"×4":    {4, true},
		"12":    {12, true},
		"x0":    {0, false},
		"100":   {0, false},
		"chain": {0, false},
	}
	for token, want := range cases {
		n, ok := parseStackCount(token)
		assert.Equal(t, want.ok, ok, token)
		if want.ok {
			assert.Equal(t, want.n, n, token)
		}
	}
}
