// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// DeleteHabitInput represents the input for habit deletion.
type DeleteHabitInput struct {
	HabitID uuid.UUID
}

// DeleteHabitOutput represents the output of habit deletion.
type DeleteHabitOutput struct {
	Deleted bool
}

// DeleteHabitUseCase handles habit deletion logic.
type DeleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
	cache     adapter.AggregationCache
}

// NewDeleteHabitUseCase creates a new DeleteHabitUseCase instance.
func NewDeleteHabitUseCase(habitRepo adapter.HabitRepository, cache adapter.AggregationCache) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{
		habitRepo: habitRepo,
		cache:     cache,
	}
}

// Execute removes the habit from the collection. An unknown id is a no-op:
// the collection is left unchanged and nothing is rewritten.
func (uc *DeleteHabitUseCase) Execute(ctx context.Context, input DeleteHabitInput) (*DeleteHabitOutput, error) {
	habits, err := uc.habitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	remaining := make([]*entity.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ID != input.HabitID {
			remaining = append(remaining, h)
		}
	}

	if len(remaining) == len(habits) {
		return &DeleteHabitOutput{Deleted: false}, nil
	}

	if err := uc.habitRepo.SaveAll(ctx, remaining); err != nil {
		return nil, fmt.Errorf("failed to save habits: %w", err)
	}

	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}

	return &DeleteHabitOutput{Deleted: true}, nil
}
