package pricing

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// redisKeyPrefix namespaces the scraper's price keys.
const redisKeyPrefix = "price:"

// RedisSource serves prices from a shared Redis instance kept up to date by
// the market scraper. Used instead of the file snapshot when REDIS_ADDR is
// configured.
type RedisSource struct {
	client *redis.Client
}

// NewRedisSource connects a price source to the given Redis address.
func NewRedisSource(addr string) *RedisSource {
	return &RedisSource{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// MarketPrice reads price:{internal_name}; a missing key means unlisted.
func (s *RedisSource) MarketPrice(ctx context.Context, internalName string) (*int, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+internalName).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read price for %s: %w", internalName, err)
	}

	price, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("malformed price for %s: %w", internalName, err)
	}
	return &price, nil
}

// Ping verifies the Redis connection, for readiness checks.
func (s *RedisSource) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *RedisSource) Close() error {
	return s.client.Close()
}
