package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sablemoor/RitualBot_Go/internal/catalog"
	"github.com/sablemoor/RitualBot_Go/internal/domain"
	"github.com/sablemoor/RitualBot_Go/internal/logger"
	"github.com/sablemoor/RitualBot_Go/internal/metrics"
	"github.com/sablemoor/RitualBot_Go/internal/ocr"
	"github.com/sablemoor/RitualBot_Go/internal/pricing"
	"github.com/sablemoor/RitualBot_Go/internal/utils"
)

const (
	// maxPhraseTokens caps how many OCR words are joined when looking for
	// multi-word item names.
	maxPhraseTokens = 3

	// matchCacheSize bounds the token match memo; stash screenshots repeat
	// the same tokens heavily across scans.
	matchCacheSize = 1024

	// maxStackCount rejects implausible OCR quantity reads.
	maxStackCount = 99
)

// stackPattern matches stack-count tokens such as "x3", "3x" or bare "3".
var stackPattern = regexp.MustCompile(`^[x×]?(\d{1,2})[x×]?$`)

// Resolver turns an OCR transcript into candidate items ready for planning.
type Resolver interface {
	Resolve(ctx context.Context, transcript *ocr.Transcript) ([]domain.CandidateItem, error)
}

type resolver struct {
	catalog *catalog.Catalog
	prices  pricing.Source
	matches *lru.Cache[string, string] // normalized token -> internal name, "" for a miss
}

// New creates a resolver over the given catalog and price source.
func New(cat *catalog.Catalog, prices pricing.Source) (Resolver, error) {
	matches, err := lru.New[string, string](matchCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create match cache: %w", err)
	}
	return &resolver{catalog: cat, prices: prices, matches: matches}, nil
}

// Resolve scans the transcript tokens, matching multi-word phrases first and
// falling back to fuzzy single-token matches, accumulating stack counts.
func (r *resolver) Resolve(ctx context.Context, transcript *ocr.Transcript) ([]domain.CandidateItem, error) {
	if transcript == nil {
		return nil, nil
	}
	tokens := tokenize(transcript)

	quantities := make(map[string]int)
	var order []string

	i := 0
	for i < len(tokens) {
		entry, consumed, ok := r.matchAt(tokens, i)
		if !ok {
			metrics.ResolverMisses.Inc()
			i++
			continue
		}
		i += consumed

		qty := 1
		if i < len(tokens) {
			if n, ok := parseStackCount(tokens[i]); ok {
				qty = n
				i++
			}
		}

		if quantities[entry.InternalName] == 0 {
			order = append(order, entry.InternalName)
		}
		quantities[entry.InternalName] += qty
	}

	metrics.ItemsResolved.Add(float64(len(order)))
	return r.annotate(ctx, order, quantities), nil
}

// matchAt tries the longest phrase starting at position i, then a fuzzy
// single-token match. Returns the entry and how many tokens were consumed.
func (r *resolver) matchAt(tokens []string, i int) (catalog.Entry, int, bool) {
	limit := len(tokens) - i
	if limit > maxPhraseTokens {
		limit = maxPhraseTokens
	}
	for n := limit; n >= 2; n-- {
		phrase := utils.NormalizeName(strings.Join(tokens[i:i+n], " "))
		if entry, ok := r.catalog.Lookup(phrase); ok {
			return entry, n, true
		}
	}

	normalized := utils.NormalizeName(tokens[i])
	if normalized == "" {
		return catalog.Entry{}, 0, false
	}
	if internalName, ok := r.matchToken(normalized); ok {
		entry, found := r.catalog.Get(internalName)
		return entry, 1, found
	}
	return catalog.Entry{}, 0, false
}

// matchToken resolves one normalized token, memoized in the LRU.
func (r *resolver) matchToken(normalized string) (string, bool) {
	if cached, ok := r.matches.Get(normalized); ok {
		return cached, cached != ""
	}

	internalName := ""
	if entry, ok := r.catalog.Lookup(normalized); ok {
		internalName = entry.InternalName
	} else {
		internalName = r.fuzzyMatch(normalized)
	}

	r.matches.Add(normalized, internalName)
	return internalName, internalName != ""
}

// fuzzyMatch finds the closest catalog name within the distance limit.
func (r *resolver) fuzzyMatch(normalized string) string {
	bestDist := -1
	bestKey := ""
	for _, key := range r.catalog.NormalizedNames() {
		dist := levenshtein.ComputeDistance(normalized, key)
		if dist > levenshteinLimit(len(key)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			bestDist = dist
			bestKey = key
		}
	}
	if bestKey == "" {
		return ""
	}
	entry, ok := r.catalog.EntryForNormalized(bestKey)
	if !ok {
		return ""
	}
	return entry.InternalName
}

// annotate builds candidate items from accumulated quantities, attaching
// base values and market prices. A failed price lookup degrades to an
// unknown price rather than failing the whole resolve.
func (r *resolver) annotate(ctx context.Context, order []string, quantities map[string]int) []domain.CandidateItem {
	log := logger.FromContext(ctx)

	items := make([]domain.CandidateItem, 0, len(order))
	for _, internalName := range order {
		entry, ok := r.catalog.Get(internalName)
		if !ok {
			continue
		}

		price, err := r.prices.MarketPrice(ctx, internalName)
		if err != nil {
			log.Warn("Failed to fetch market price", "item", internalName, "error", err)
			price = nil
		}

		items = append(items, domain.CandidateItem{
			ID:          entry.InternalName,
			Name:        entry.DisplayName,
			IconURL:     entry.IconURL,
			BasePrice:   entry.BaseValue,
			MarketPrice: price,
			Quantity:    quantities[internalName],
		})
	}
	return items
}

// tokenize prefers positioned words, falling back to the flat text.
func tokenize(transcript *ocr.Transcript) []string {
	if len(transcript.Words) > 0 {
		tokens := make([]string, 0, len(transcript.Words))
		for _, w := range transcript.Words {
			tokens = append(tokens, w.Text)
		}
		return tokens
	}
	return strings.Fields(transcript.Text)
}

// parseStackCount reads quantity tokens like "x3", "3x" or "3".
func parseStackCount(token string) (int, bool) {
	m := stackPattern.FindStringSubmatch(strings.ToLower(token))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > maxStackCount {
		return 0, false
	}
	return n, true
}

// levenshteinLimit scales the allowed edit distance with the candidate
// length: short names must match exactly, long names tolerate OCR noise.
func levenshteinLimit(n int) int {
	switch {
	case n <= 3:
		return 0
	case n <= 6:
		return 1
	case n <= 10:
		return 2
	default:
		return 3
	}
}
