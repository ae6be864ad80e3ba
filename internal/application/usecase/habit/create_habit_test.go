// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"errors"
	"testing"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func TestCreateHabitUseCase_Execute(t *testing.T) {
	clock := fakeClock{now: mustDay("2025-03-15")}

	t.Run("creates a habit with empty history and zero streak", func(t *testing.T) {
		repo := &memoryHabitRepository{}
		uc := NewCreateHabitUseCase(repo, clock)

		output, err := uc.Execute(context.Background(), CreateHabitInput{
			Name:        "Drink water",
			Description: "8 glasses",
			Color:       "#10b981",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		h := output.Habit
		if h.Name != "Drink water" || h.Description != "8 glasses" || h.Color != "#10b981" {
			t.Errorf("unexpected habit fields: %+v", h)
		}
		if h.Streak != 0 || h.CompletedToday || len(h.CompletedDates) != 0 {
			t.Errorf("expected empty derived state, got %+v", h)
		}
		if len(repo.habits) != 1 {
			t.Fatalf("expected 1 persisted habit, got %d", len(repo.habits))
		}
		if repo.habits[0].ID != h.ID {
			t.Error("expected the created habit to be appended to the collection")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		repo := &memoryHabitRepository{}
		uc := NewCreateHabitUseCase(repo, clock)

		_, err := uc.Execute(context.Background(), CreateHabitInput{Name: ""})
		if !errors.Is(err, domainerror.ErrEmptyHabitName) {
			t.Fatalf("expected ErrEmptyHabitName, got %v", err)
		}
		if repo.saves != 0 || len(repo.habits) != 0 {
			t.Error("expected the collection to be left unchanged")
		}
	})

	t.Run("rejects whitespace-only name", func(t *testing.T) {
		repo := &memoryHabitRepository{}
		uc := NewCreateHabitUseCase(repo, clock)

		_, err := uc.Execute(context.Background(), CreateHabitInput{Name: "   \t "})
		var habitErr *domainerror.HabitError
		if !errors.As(err, &habitErr) {
			t.Fatalf("expected a HabitError, got %v", err)
		}
		if habitErr.Code != domainerror.ErrCodeEmptyHabitName {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyHabitName, habitErr.Code)
		}
		if len(repo.habits) != 0 {
			t.Error("expected the collection to be left unchanged")
		}
	})

	t.Run("defaults the color when absent", func(t *testing.T) {
		repo := &memoryHabitRepository{}
		uc := NewCreateHabitUseCase(repo, clock)

		output, err := uc.Execute(context.Background(), CreateHabitInput{Name: "Meditate"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Habit.Color != entity.DefaultHabitColor {
			t.Errorf("expected default color %s, got %s", entity.DefaultHabitColor, output.Habit.Color)
		}
	})

	t.Run("assigns unique ids", func(t *testing.T) {
		repo := &memoryHabitRepository{}
		uc := NewCreateHabitUseCase(repo, clock)

		first, err := uc.Execute(context.Background(), CreateHabitInput{Name: "One"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background(), CreateHabitInput{Name: "Two"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Habit.ID == second.Habit.ID {
			t.Error("expected distinct habit ids")
		}
	})
}
