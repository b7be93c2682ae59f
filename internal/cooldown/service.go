package cooldown

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
)

// maxTrackedEntries bounds cooldown memory; old entries evict least
// recently used, which only ever shortens a user's wait.
const maxTrackedEntries = 4096

// Service guards actions with a per-user lockout window. It is a caller-side
// rate limit around expensive operations; the operations themselves stay
// oblivious to it.
type Service interface {
	// CheckCooldown reports whether the action is still locked out and the
	// remaining wait.
	CheckCooldown(ctx context.Context, userID, action string) (bool, time.Duration)

	// EnforceCooldown runs fn if the action is off cooldown, recording the
	// attempt; otherwise it returns ErrOnCooldown without running fn.
	EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error

	// ResetCooldown clears a lockout (admin/testing).
	ResetCooldown(ctx context.Context, userID, action string)
}

// ErrOnCooldown is returned when an action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	seconds := int(e.Remaining.Seconds()) + 1
	return fmt.Sprintf("action '%s' on cooldown: %ds remaining", e.Action, seconds)
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Unwrap ties the typed error to the domain sentinel so callers can match
// on domain.ErrOnCooldown without importing this package.
func (e ErrOnCooldown) Unwrap() error {
	return domain.ErrOnCooldown
}

type service struct {
	window   time.Duration
	mu       sync.Mutex
	lastUsed *lru.Cache[string, time.Time]
	now      func() time.Time // injectable for testing
}

// NewService creates a cooldown guard with the given lockout window.
func NewService(window time.Duration) Service {
	// lru.New only fails for a non-positive size.
	lastUsed, _ := lru.New[string, time.Time](maxTrackedEntries)
	return &service{
		window:   window,
		lastUsed: lastUsed,
		now:      time.Now,
	}
}

func key(userID, action string) string {
	return userID + ":" + action
}

func (s *service) CheckCooldown(_ context.Context, userID, action string) (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining(userID, action)
}

func (s *service) EnforceCooldown(_ context.Context, userID, action string, fn func() error) error {
	s.mu.Lock()
	onCooldown, remaining := s.remaining(userID, action)
	if onCooldown {
		s.mu.Unlock()
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}
	s.lastUsed.Add(key(userID, action), s.now())
	s.mu.Unlock()

	return fn()
}

func (s *service) ResetCooldown(_ context.Context, userID, action string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed.Remove(key(userID, action))
}

// remaining must be called with the mutex held.
func (s *service) remaining(userID, action string) (bool, time.Duration) {
	last, ok := s.lastUsed.Get(key(userID, action))
	if !ok {
		return false, 0
	}
	elapsed := s.now().Sub(last)
	if elapsed >= s.window {
		return false, 0
	}
	return true, s.window - elapsed
}
