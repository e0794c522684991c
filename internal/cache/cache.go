// Package cache is a thin Redis wrapper for the public read endpoints.
// When Redis is not configured every call is a no-op and handlers fall
// through to the store.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New wraps a Redis client. A nil client disables caching.
func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb, ttl: defaultTTL}
}

// GetJSON loads a cached value into dest. Returns false on a miss, on
// any Redis error, or when caching is disabled; callers treat all
// three the same way.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetJSON stores a value best-effort; failures are ignored.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, raw, c.ttl)
}

// Invalidate removes every key under the prefix. Write paths call this
// so stale public reads never outlive a change.
func (c *Cache) Invalidate(ctx context.Context, prefix string) {
	if c == nil || c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}
