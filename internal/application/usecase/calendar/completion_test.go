// Package calendar contains calendar-aggregation use cases.
package calendar

import (
	"fmt"
	"testing"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

func newHabitCompletedOn(name string, days ...string) *entity.Habit {
	h := entity.NewHabit(name, "", entity.DefaultHabitColor)
	for _, d := range days {
		h.AddCompletedDate(d)
	}
	return h
}

func TestComputeCompletionStats(t *testing.T) {
	const day = "2025-03-15"

	t.Run("no habits yields zero percentage and bucket", func(t *testing.T) {
		stats := ComputeCompletionStats(nil, day)
		if stats.TotalCount != 0 || stats.CompletedCount != 0 {
			t.Errorf("expected zero counts, got %+v", stats)
		}
		if stats.Percentage != 0 {
			t.Errorf("expected percentage 0 with no habits, got %f", stats.Percentage)
		}
		if stats.Level != 0 {
			t.Errorf("expected bucket 0 with no habits, got %d", stats.Level)
		}
	})

	t.Run("bucket boundaries with four habits", func(t *testing.T) {
		habits := []*entity.Habit{
			newHabitCompletedOn("a"),
			newHabitCompletedOn("b"),
			newHabitCompletedOn("c"),
			newHabitCompletedOn("d"),
		}

		// 0 of 4 completed, then mark one more habit per step.
		wantLevels := []int{0, 1, 2, 3, 4}
		for completed, want := range wantLevels {
			if completed > 0 {
				habits[completed-1].AddCompletedDate(day)
			}
			stats := ComputeCompletionStats(habits, day)
			if stats.CompletedCount != completed {
				t.Fatalf("expected %d completed, got %d", completed, stats.CompletedCount)
			}
			if stats.Level != want {
				t.Errorf("%d/4 completed: expected bucket %d, got %d", completed, want, stats.Level)
			}
		}
	})

	t.Run("counts only habits completed on the target date", func(t *testing.T) {
		habits := []*entity.Habit{
			newHabitCompletedOn("a", "2025-03-15"),
			newHabitCompletedOn("b", "2025-03-14"),
			newHabitCompletedOn("c"),
		}
		stats := ComputeCompletionStats(habits, day)
		if stats.CompletedCount != 1 || stats.TotalCount != 3 {
			t.Errorf("expected 1/3 completed, got %d/%d", stats.CompletedCount, stats.TotalCount)
		}
	})

	t.Run("every habit counts toward the denominator for every date", func(t *testing.T) {
		// Habits created later still inflate historical denominators;
		// this is the preserved reference behavior.
		habits := []*entity.Habit{
			newHabitCompletedOn("old", "2020-01-01"),
			newHabitCompletedOn("new"),
		}
		stats := ComputeCompletionStats(habits, "2020-01-01")
		if stats.TotalCount != 2 {
			t.Errorf("expected denominator 2 for a historical date, got %d", stats.TotalCount)
		}
		if stats.Percentage != 50 {
			t.Errorf("expected percentage 50, got %f", stats.Percentage)
		}
	})
}

func TestCompletionLevel(t *testing.T) {
	cases := []struct {
		percentage float64
		want       int
	}{
		{0, 0},
		{0.1, 1},
		{25, 1},
		{25.1, 2},
		{50, 2},
		{50.1, 3},
		{75, 3},
		{75.1, 4},
		{100, 4},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%.1f%%", c.percentage), func(t *testing.T) {
			if got := completionLevel(c.percentage); got != c.want {
				t.Errorf("completionLevel(%f) = %d, want %d", c.percentage, got, c.want)
			}
		})
	}
}
