package prefs

import (
	"context"
	"sync"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
)

// MemoryRepository keeps preferences in process memory. Used in tests and
// when no database is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]domain.Preferences
}

// NewMemoryRepository creates an empty in-memory preferences repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]domain.Preferences)}
}

func (r *MemoryRepository) Get(_ context.Context, userID string) (*domain.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrPrefsNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) Upsert(_ context.Context, p domain.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[p.UserID] = p
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, userID)
	return nil
}
