// Package cache keeps recently fetched raw product payloads in Redis so
// rapid filter changes on a listing page do not hammer the upstream product
// API. Filtering itself always runs on the live request; only the raw
// upstream payload is cached.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

type Listing struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewListing wraps a Redis client. A nil client degrades to a pass-through
// cache (every Get misses, every Set is a no-op) so the storefront runs
// without Redis in development.
func NewListing(rdb *redis.Client, ttl time.Duration) *Listing {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Listing{rdb: rdb, ttl: ttl}
}

// Key builds the cache key for one listing fetch.
func Key(petType, category, sub string) string {
	return "storefront:listing:" + petType + ":" + category + ":" + sub
}

func (c *Listing) Get(ctx context.Context, key string) ([]map[string]any, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("listing cache: get %s failed: %v", key, err)
		}
		return nil, false
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		// Poisoned entry; drop it and fall through to the upstream fetch.
		c.rdb.Del(ctx, key)
		return nil, false
	}
	return rows, true
}

func (c *Listing) Set(ctx context.Context, key string, rows []map[string]any) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("listing cache: set %s failed: %v", key, err)
	}
}
