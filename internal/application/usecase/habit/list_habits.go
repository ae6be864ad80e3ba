// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListHabitsOutput represents the output of listing habits.
type ListHabitsOutput struct {
	Habits []*entity.Habit
}

// ListHabitsUseCase handles listing the habit collection.
type ListHabitsUseCase struct {
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(habitRepo adapter.HabitRepository, clock adapter.Clock) *ListHabitsUseCase {
	return &ListHabitsUseCase{
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Execute loads the full habit collection. The stored completedToday flag is
// not trusted across day boundaries, so it is recomputed against today's
// date before the habits are returned.
func (uc *ListHabitsUseCase) Execute(ctx context.Context) (*ListHabitsOutput, error) {
	habits, err := uc.habitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	today := uc.clock.Now()
	for _, h := range habits {
		h.CompletedToday = IsCompletedToday(h, today)
	}

	return &ListHabitsOutput{
		Habits: habits,
	}, nil
}
