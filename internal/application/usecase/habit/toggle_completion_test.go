// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func TestToggleCompletionUseCase_Execute(t *testing.T) {
	clock := fakeClock{now: mustDay("2025-03-15")}

	newRepoWithHabit := func() (*memoryHabitRepository, *entity.Habit) {
		h := entity.NewHabit("Run", "", entity.DefaultHabitColor)
		return &memoryHabitRepository{habits: []*entity.Habit{h}}, h
	}

	t.Run("marks today completed and recomputes the streak", func(t *testing.T) {
		repo, h := newRepoWithHabit()
		h.AddCompletedDate("2025-03-14")
		cache := &countingCache{}
		uc := NewToggleCompletionUseCase(repo, cache, clock)

		output, err := uc.Execute(context.Background(), ToggleCompletionInput{HabitID: h.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Completed {
			t.Error("expected the toggle to mark the date completed")
		}
		if output.Habit.Streak != 2 {
			t.Errorf("expected streak 2, got %d", output.Habit.Streak)
		}
		if !output.Habit.CompletedToday {
			t.Error("expected completedToday to be recomputed to true")
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("keeps completion dates sorted", func(t *testing.T) {
		repo, h := newRepoWithHabit()
		h.CompletedDates = []string{"2025-03-10", "2025-03-14"}
		uc := NewToggleCompletionUseCase(repo, nil, clock)

		output, err := uc.Execute(context.Background(), ToggleCompletionInput{
			HabitID: h.ID,
			Date:    "2025-03-12",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"2025-03-10", "2025-03-12", "2025-03-14"}
		if !reflect.DeepEqual(output.Habit.CompletedDates, want) {
			t.Errorf("expected sorted dates %v, got %v", want, output.Habit.CompletedDates)
		}
	})

	t.Run("toggling twice restores the original state", func(t *testing.T) {
		repo, h := newRepoWithHabit()
		h.CompletedDates = []string{"2025-03-15"}
		refreshDerived(h, clock.now)
		originalDates := append([]string{}, h.CompletedDates...)
		originalStreak := h.Streak
		uc := NewToggleCompletionUseCase(repo, nil, clock)

		for i := 0; i < 2; i++ {
			if _, err := uc.Execute(context.Background(), ToggleCompletionInput{
				HabitID: h.ID,
				Date:    "2025-03-13",
			}); err != nil {
				t.Fatalf("unexpected error on toggle %d: %v", i+1, err)
			}
		}

		if !reflect.DeepEqual(h.CompletedDates, originalDates) {
			t.Errorf("expected dates %v after double toggle, got %v", originalDates, h.CompletedDates)
		}
		if h.Streak != originalStreak {
			t.Errorf("expected streak %d after double toggle, got %d", originalStreak, h.Streak)
		}
	})

	t.Run("unmarking today drops the streak", func(t *testing.T) {
		repo, h := newRepoWithHabit()
		h.CompletedDates = []string{"2025-03-13", "2025-03-14", "2025-03-15"}
		refreshDerived(h, clock.now)
		uc := NewToggleCompletionUseCase(repo, nil, clock)

		output, err := uc.Execute(context.Background(), ToggleCompletionInput{
			HabitID: h.ID,
			Date:    "2025-03-15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Completed {
			t.Error("expected the toggle to unmark the date")
		}
		// Today is no longer completed, so the current streak is 0 even
		// though two prior consecutive days remain.
		if output.Habit.Streak != 0 {
			t.Errorf("expected streak 0, got %d", output.Habit.Streak)
		}
		if output.Habit.CompletedToday {
			t.Error("expected completedToday to be false")
		}
	})

	t.Run("unknown habit id leaves state untouched", func(t *testing.T) {
		repo, _ := newRepoWithHabit()
		uc := NewToggleCompletionUseCase(repo, nil, clock)

		_, err := uc.Execute(context.Background(), ToggleCompletionInput{HabitID: uuid.New()})
		if !errors.Is(err, domainerror.ErrHabitNotFound) {
			t.Fatalf("expected ErrHabitNotFound, got %v", err)
		}
		if repo.saves != 0 {
			t.Error("expected no rewrite for an unknown id")
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		repo, h := newRepoWithHabit()
		uc := NewToggleCompletionUseCase(repo, nil, clock)

		_, err := uc.Execute(context.Background(), ToggleCompletionInput{
			HabitID: h.ID,
			Date:    "15/03/2025",
		})
		var habitErr *domainerror.HabitError
		if !errors.As(err, &habitErr) {
			t.Fatalf("expected a HabitError, got %v", err)
		}
		if habitErr.Code != domainerror.ErrCodeInvalidCompletionDate {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCompletionDate, habitErr.Code)
		}
	})
}
