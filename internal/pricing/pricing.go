package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Source yields the current market price for a catalog item. A nil price
// means no listing is known; the planner then excludes the item.
type Source interface {
	MarketPrice(ctx context.Context, internalName string) (*int, error)
}

// Snapshot is the on-disk market price dump the companion scraper writes.
type Snapshot struct {
	UpdatedAt string         `json:"updated_at"`
	Prices    map[string]int `json:"prices"`
}

const snapshotKey = "snapshot"

// DefaultTTL is how long a loaded snapshot is served before re-reading disk.
const DefaultTTL = 5 * time.Minute

// FileSource serves prices from a JSON snapshot file behind a TTL cache.
type FileSource struct {
	path  string
	cache *gocache.Cache
}

// NewFileSource creates a snapshot-backed price source.
func NewFileSource(path string, ttl time.Duration) *FileSource {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FileSource{
		path:  path,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// MarketPrice returns the snapshot price for an item, nil when unlisted.
func (s *FileSource) MarketPrice(_ context.Context, internalName string) (*int, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if price, ok := snap.Prices[internalName]; ok {
		return &price, nil
	}
	return nil, nil
}

// snapshot returns the cached snapshot, reloading the file after expiry.
func (s *FileSource) snapshot() (*Snapshot, error) {
	if cached, ok := s.cache.Get(snapshotKey); ok {
		return cached.(*Snapshot), nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read price snapshot %s: %w", s.path, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse price snapshot %s: %w", s.path, err)
	}

	s.cache.SetDefault(snapshotKey, &snap)
	return &snap, nil
}
