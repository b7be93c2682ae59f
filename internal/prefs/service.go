package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
	"github.com/sablemoor/RitualBot_Go/internal/optimizer"
)

// Service exposes preference reads and writes with defaulting and
// validation on top of a Repository.
type Service interface {
	Get(ctx context.Context, userID string) (*domain.Preferences, error)
	Update(ctx context.Context, prefs domain.Preferences) error
}

type service struct {
	repo Repository
}

// NewService creates a preferences service over the given repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Get returns the stored preferences, or the defaults for a user who has
// never saved any.
func (s *service) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	p, err := s.repo.Get(ctx, userID)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, domain.ErrPrefsNotFound) {
		defaults := domain.DefaultPreferences(userID)
		return &defaults, nil
	}
	return nil, err
}

// Update validates and persists preferences.
func (s *service) Update(ctx context.Context, p domain.Preferences) error {
	if p.UserID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if _, err := domain.PolicyByKey(p.PolicyKey); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrUnknownPolicy, p.PolicyKey)
	}
	if p.MaxUnits < 1 || p.MaxUnits > optimizer.MaxUnitsCap {
		return fmt.Errorf("%w: max units must be between 1 and %d", domain.ErrInvalidInput, optimizer.MaxUnitsCap)
	}

	return s.repo.Upsert(ctx, p)
}
