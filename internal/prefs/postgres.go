package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
)

// PostgresRepository persists preferences in the user_prefs table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a Postgres-backed preferences repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	const query = `
		SELECT user_id, policy_key, max_units, theme, auto_ocr_scan
		FROM user_prefs
		WHERE user_id = $1`

	var p domain.Preferences
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.PolicyKey, &p.MaxUnits, &p.Theme, &p.AutoOCRScan,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPrefsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, p domain.Preferences) error {
	const query = `
		INSERT INTO user_prefs (user_id, policy_key, max_units, theme, auto_ocr_scan, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id) DO UPDATE SET
			policy_key = EXCLUDED.policy_key,
			max_units = EXCLUDED.max_units,
			theme = EXCLUDED.theme,
			auto_ocr_scan = EXCLUDED.auto_ocr_scan,
			updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, p.UserID, p.PolicyKey, p.MaxUnits, p.Theme, p.AutoOCRScan); err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM user_prefs WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete preferences: %w", err)
	}
	return nil
}
