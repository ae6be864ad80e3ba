// Package habit contains habit-related use cases.
package habit

import (
	"testing"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

func TestCalculateStreak(t *testing.T) {
	today := mustDay("2025-03-15")

	t.Run("empty history has no streak", func(t *testing.T) {
		if got := CalculateStreak(nil, today); got != 0 {
			t.Errorf("expected streak 0, got %d", got)
		}
		if got := CalculateStreak([]string{}, today); got != 0 {
			t.Errorf("expected streak 0, got %d", got)
		}
	})

	t.Run("today absent resets the streak to zero", func(t *testing.T) {
		// A long run ending yesterday does not count.
		dates := []string{"2025-03-10", "2025-03-11", "2025-03-12", "2025-03-13", "2025-03-14"}
		if got := CalculateStreak(dates, today); got != 0 {
			t.Errorf("expected streak 0 when today is not completed, got %d", got)
		}
	})

	t.Run("consecutive run ending today", func(t *testing.T) {
		dates := []string{"2025-03-13", "2025-03-14", "2025-03-15"}
		if got := CalculateStreak(dates, today); got != 3 {
			t.Errorf("expected streak 3, got %d", got)
		}
	})

	t.Run("stops at the first gap", func(t *testing.T) {
		// Gap at 2025-03-13: only today and yesterday count.
		dates := []string{"2025-03-12", "2025-03-14", "2025-03-15"}
		if got := CalculateStreak(dates, today); got != 2 {
			t.Errorf("expected streak 2, got %d", got)
		}
	})

	t.Run("today alone counts as one", func(t *testing.T) {
		if got := CalculateStreak([]string{"2025-03-15"}, today); got != 1 {
			t.Errorf("expected streak 1, got %d", got)
		}
	})

	t.Run("crosses month boundaries", func(t *testing.T) {
		first := mustDay("2025-03-01")
		dates := []string{"2025-02-27", "2025-02-28", "2025-03-01"}
		if got := CalculateStreak(dates, first); got != 3 {
			t.Errorf("expected streak 3 across the month boundary, got %d", got)
		}
	})

	t.Run("unrelated dates do not inflate the walk", func(t *testing.T) {
		// The walk is bounded by set size but must short-circuit on the
		// first missing day even with many disjoint dates present.
		dates := []string{"2024-01-01", "2024-06-01", "2025-01-01", "2025-03-15"}
		if got := CalculateStreak(dates, today); got != 1 {
			t.Errorf("expected streak 1, got %d", got)
		}
	})
}

func TestIsCompletedToday(t *testing.T) {
	today := mustDay("2025-03-15")
	h := entity.NewHabit("Read", "", entity.DefaultHabitColor)

	if IsCompletedToday(h, today) {
		t.Error("expected new habit to not be completed today")
	}

	h.AddCompletedDate("2025-03-15")
	if !IsCompletedToday(h, today) {
		t.Error("expected habit completed on today's date to report completed")
	}

	// The stored flag is irrelevant; only the date set counts.
	h.CompletedToday = false
	if !IsCompletedToday(h, today) {
		t.Error("expected the date-based check to ignore the stored flag")
	}
}
