// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AggregationCache caches rendered calendar aggregations. The cache is
// advisory: callers treat every miss or error as "recompute".
type AggregationCache interface {
	// GetYear returns the cached year-view payload, or nil when absent.
	GetYear(ctx context.Context, year int) ([]byte, error)

	// SetYear stores the year-view payload.
	SetYear(ctx context.Context, year int, payload []byte) error

	// Invalidate drops all cached aggregations. Called after every habit
	// mutation.
	Invalidate(ctx context.Context) error
}
