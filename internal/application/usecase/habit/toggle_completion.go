// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// ToggleCompletionInput represents the input for toggling a completion.
type ToggleCompletionInput struct {
	HabitID uuid.UUID
	Date    string // Optional YYYY-MM-DD; defaults to today
}

// ToggleCompletionOutput represents the output of toggling a completion.
type ToggleCompletionOutput struct {
	Habit     *entity.Habit
	Completed bool // Membership of the toggled date after the flip
}

// ToggleCompletionUseCase handles flipping a habit's completion for a date.
type ToggleCompletionUseCase struct {
	habitRepo adapter.HabitRepository
	cache     adapter.AggregationCache
	clock     adapter.Clock
}

// NewToggleCompletionUseCase creates a new ToggleCompletionUseCase instance.
func NewToggleCompletionUseCase(
	habitRepo adapter.HabitRepository,
	cache adapter.AggregationCache,
	clock adapter.Clock,
) *ToggleCompletionUseCase {
	return &ToggleCompletionUseCase{
		habitRepo: habitRepo,
		cache:     cache,
		clock:     clock,
	}
}

// Execute flips membership of the date in the habit's completion history,
// recomputes the derived streak and completed-today fields, and rewrites the
// full collection. An unknown habit id leaves the collection untouched.
func (uc *ToggleCompletionUseCase) Execute(ctx context.Context, input ToggleCompletionInput) (*ToggleCompletionOutput, error) {
	today := uc.clock.Now()

	day := input.Date
	if day == "" {
		day = entity.FormatDay(today)
	} else if _, err := entity.ParseDay(day); err != nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidCompletionDate,
			"date must be a valid YYYY-MM-DD calendar date",
			domainerror.ErrInvalidCompletionDate,
		)
	}

	habits, err := uc.habitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	var habit *entity.Habit
	for _, h := range habits {
		if h.ID == input.HabitID {
			habit = h
			break
		}
	}
	if habit == nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}

	completed := habit.IsCompletedOn(day)
	if completed {
		habit.RemoveCompletedDate(day)
	} else {
		habit.AddCompletedDate(day)
	}
	refreshDerived(habit, today)

	if err := uc.habitRepo.SaveAll(ctx, habits); err != nil {
		return nil, fmt.Errorf("failed to save habits: %w", err)
	}

	// The cache is advisory; a failed invalidation only delays freshness
	// until the TTL expires.
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}

	return &ToggleCompletionOutput{
		Habit:     habit,
		Completed: !completed,
	}, nil
}
