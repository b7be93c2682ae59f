package prefs

import (
	"context"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
)

// Repository stores user preferences. Get returns domain.ErrPrefsNotFound
// when the user has never saved any.
type Repository interface {
	Get(ctx context.Context, userID string) (*domain.Preferences, error)
	Upsert(ctx context.Context, prefs domain.Preferences) error
	Delete(ctx context.Context, userID string) error
}
