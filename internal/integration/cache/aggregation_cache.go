// Package cache implements the aggregation cache on Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

const yearViewKeyPattern = "calendar:year:*"

// aggregationCache implements the adapter.AggregationCache interface.
// Entries expire on their own; habit mutations also drop them eagerly so a
// toggle shows up in the year view immediately.
type aggregationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAggregationCache creates a new Redis-backed aggregation cache.
func NewAggregationCache(client *redis.Client, ttl time.Duration) adapter.AggregationCache {
	return &aggregationCache{
		client: client,
		ttl:    ttl,
	}
}

// GetYear returns the cached year-view payload, or nil when absent.
func (c *aggregationCache) GetYear(ctx context.Context, year int) ([]byte, error) {
	payload, err := c.client.Get(ctx, yearViewKey(year)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// SetYear stores the year-view payload with the configured TTL.
func (c *aggregationCache) SetYear(ctx context.Context, year int, payload []byte) error {
	return c.client.Set(ctx, yearViewKey(year), payload, c.ttl).Err()
}

// Invalidate drops every cached year view.
func (c *aggregationCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, yearViewKeyPattern, 0).Iterator()
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

func yearViewKey(year int) string {
	return fmt.Sprintf("calendar:year:%d", year)
}
