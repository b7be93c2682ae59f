package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// minConnections keeps a couple of warm connections so the first preference
// read after an idle period does not pay the connect cost.
const minConnections = 2

// pingTimeout bounds the startup reachability check.
const pingTimeout = 5 * time.Second

// Pool is the slice of pgxpool the rest of the service depends on: the
// readiness probe pings it, shutdown closes it.
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool connects to Postgres and verifies reachability before returning.
// The preference store is the only consumer, so the pool is tuned small by
// its callers.
func NewPool(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = minConnections
	config.MaxConnLifetime = maxLife
	config.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Default().Info("Connected to the preferences database")
	return pool, nil
}
