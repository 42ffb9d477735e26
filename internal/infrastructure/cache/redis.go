package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/invoicehub/backend/internal/infrastructure/config"
)

const keyPrefix = "listing:"

// RedisListingCache caches rendered listing payloads in Redis, keyed by
// route-scoped cache keys so a whole route can be invalidated at once.
type RedisListingCache struct {
	client *redis.Client
}

// NewRedisClient creates a Redis client from config and verifies connectivity
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// NewRedisListingCache creates a Redis-backed listing cache
func NewRedisListingCache(client *redis.Client) *RedisListingCache {
	return &RedisListingCache{client: client}
}

// Get returns the cached payload for key, reporting whether it was present
func (c *RedisListingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

// Set stores a payload under key with the given TTL
func (c *RedisListingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

// Invalidate removes every cached entry whose key starts with the route
func (c *RedisListingCache) Invalidate(ctx context.Context, route string) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+route+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Close releases the underlying client
func (c *RedisListingCache) Close() error {
	return c.client.Close()
}
