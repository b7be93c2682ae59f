package domain

// CandidateItem is a single stash item eligible for a ritual offering,
// as produced by the resolver (or supplied directly by an API caller).
// MarketPrice is nil when no market listing is known; such items cannot
// be cost-compared and are excluded from planning.
type CandidateItem struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	BasePrice   int    `json:"base_price" validate:"gte=0"`
	MarketPrice *int   `json:"market_price"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
}

// HasMarketPrice reports whether the item carries a known market price.
func (c CandidateItem) HasMarketPrice() bool {
	return c.MarketPrice != nil
}

// SelectedItem is one grouped entry of a ritual offering. Quantity is the
// number of units chosen, never more than the candidate offered.
type SelectedItem struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	BasePrice   int    `json:"base_price"`
	MarketPrice int    `json:"market_price"`
	Quantity    int    `json:"quantity"`
}

// SelectionResult is the outcome of a planning run. An empty Selected list
// with zero totals means no feasible combination existed; it is not an error.
type SelectionResult struct {
	Selected         []SelectedItem `json:"selected"`
	TotalMarketValue int            `json:"total_market_value"`
	TotalBaseValue   int            `json:"total_base_value"`
}

// Empty reports whether the result carries no selection.
func (r SelectionResult) Empty() bool {
	return len(r.Selected) == 0
}
