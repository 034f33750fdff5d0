package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures the Redis backend. Give the cache its own
// logical database: Clear drops the whole database, not key prefixes.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache stores entries in a Redis server, the backend the HTTP
// server uses so replicas share one cache. Transient failures come back
// wrapped as retryable; pair calls with [RetryWithBackoff] when a flaky
// link should not fail the request.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection before
// returning the backend.
func NewRedisCache(ctx context.Context, opts RedisOptions) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", opts.Addr, err)
	}
	return &RedisCache{client: client}, nil
}

// Get retrieves a value from the cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, Retryable(err)
	}
	return data, true, nil
}

// Set stores a value in the cache. Redis treats a zero expiration as
// no expiry, matching the Cache contract.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return Retryable(err)
	}
	return nil
}

// Delete removes a value from the cache.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return Retryable(err)
	}
	return nil
}

// Clear drops the cache's logical database.
func (c *RedisCache) Clear(ctx context.Context) error {
	if err := c.client.FlushDB(ctx).Err(); err != nil {
		return Retryable(err)
	}
	return nil
}

// Stats reports the number of keys in the cache's database. Redis does
// not expose per-key payload sizes cheaply, so Bytes stays zero.
func (c *RedisCache) Stats(ctx context.Context) (Stats, error) {
	n, err := c.client.DBSize(ctx).Result()
	if err != nil {
		return Stats{}, Retryable(err)
	}
	return Stats{Entries: n}, nil
}

// Close releases the client's connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
var _ StatsProvider = (*RedisCache)(nil)
var _ Clearer = (*RedisCache)(nil)
