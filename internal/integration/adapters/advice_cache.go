// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spendwise/backend/internal/application/adapter"
)

// adviceCache implements the adapter.AdviceCache interface on redis.
type adviceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAdviceCache creates a new redis-backed advice cache instance.
func NewAdviceCache(client *redis.Client, ttl time.Duration) adapter.AdviceCache {
	return &adviceCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached advice for a key, or ok=false on a miss.
func (c *adviceCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

// Set stores advice under a key with the cache's configured TTL.
func (c *adviceCache) Set(ctx context.Context, key, advice string) error {
	return c.client.Set(ctx, key, advice, c.ttl).Err()
}
