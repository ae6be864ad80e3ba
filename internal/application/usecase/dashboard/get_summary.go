// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/habit"
)

// GetSummaryOutput represents the dashboard headline numbers.
type GetSummaryOutput struct {
	TotalHabits    int
	CompletedToday int
	CompletionRate float64
	BestStreak     int
}

// GetSummaryUseCase computes the dashboard summary: habit totals, today's
// completion rate, and the longest current streak across all habits.
type GetSummaryUseCase struct {
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(habitRepo adapter.HabitRepository, clock adapter.Clock) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	habits, err := uc.habitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	today := uc.clock.Now()
	completedToday := 0
	bestStreak := 0
	for _, h := range habits {
		if habit.IsCompletedToday(h, today) {
			completedToday++
		}
		if h.Streak > bestStreak {
			bestStreak = h.Streak
		}
	}

	rate := 0.0
	if len(habits) > 0 {
		rate = float64(completedToday) / float64(len(habits)) * 100
	}

	return &GetSummaryOutput{
		TotalHabits:    len(habits),
		CompletedToday: completedToday,
		CompletionRate: rate,
		BestStreak:     bestStreak,
	}, nil
}
