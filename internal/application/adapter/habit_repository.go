// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// HabitRepository defines the persistence contract for the habit collection.
//
// The collection is a single serialized document: every read loads the whole
// list and every write rewrites it in full (last-writer-wins, matching the
// single-local-user storage model). There are no incremental updates.
type HabitRepository interface {
	// LoadAll reads the full habit collection. A missing or unparsable
	// document degrades to an empty list, never an error.
	LoadAll(ctx context.Context) ([]*entity.Habit, error)

	// SaveAll rewrites the full habit collection.
	SaveAll(ctx context.Context, habits []*entity.Habit) error
}
