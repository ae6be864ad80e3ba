// Package calendar contains calendar-aggregation use cases.
package calendar

import (
	"context"
	"fmt"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// HabitCompletion pairs a habit with its completion state for one date.
type HabitCompletion struct {
	Habit     *entity.Habit
	Completed bool
}

// GetDayViewInput represents the input for the day view.
type GetDayViewInput struct {
	Date string // Optional YYYY-MM-DD; defaults to today
}

// GetDayViewOutput represents the per-habit breakdown for one date.
type GetDayViewOutput struct {
	Date   string
	Habits []HabitCompletion
	Stats  CompletionStats
}

// GetDayViewUseCase computes the per-habit completion breakdown for a date.
type GetDayViewUseCase struct {
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewGetDayViewUseCase creates a new GetDayViewUseCase instance.
func NewGetDayViewUseCase(habitRepo adapter.HabitRepository, clock adapter.Clock) *GetDayViewUseCase {
	return &GetDayViewUseCase{
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Execute computes the day view.
func (uc *GetDayViewUseCase) Execute(ctx context.Context, input GetDayViewInput) (*GetDayViewOutput, error) {
	day := input.Date
	if day == "" {
		day = entity.FormatDay(uc.clock.Now())
	} else if _, err := entity.ParseDay(day); err != nil {
		return nil, domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidCalendarDate,
			"date must be a valid YYYY-MM-DD calendar date",
			domainerror.ErrInvalidCalendarDate,
		)
	}

	habits, err := uc.habitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	completions := make([]HabitCompletion, len(habits))
	for i, h := range habits {
		completions[i] = HabitCompletion{
			Habit:     h,
			Completed: h.IsCompletedOn(day),
		}
	}

	return &GetDayViewOutput{
		Date:   day,
		Habits: completions,
		Stats:  ComputeCompletionStats(habits, day),
	}, nil
}
