// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"
	"strings"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	Name        string
	Description string
	Color       string // Optional, defaults to entity.DefaultHabitColor
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository, clock adapter.Clock) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	// Validate name
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeEmptyHabitName,
			"habit name cannot be empty",
			domainerror.ErrEmptyHabitName,
		)
	}

	// Apply color default
	color := input.Color
	if color == "" {
		color = entity.DefaultHabitColor
	}

	// Load the full collection, append, rewrite
	habits, err := uc.habitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	habit := entity.NewHabit(input.Name, input.Description, color)
	habit.CreatedAt = uc.clock.Now().UTC()
	habits = append(habits, habit)

	if err := uc.habitRepo.SaveAll(ctx, habits); err != nil {
		return nil, fmt.Errorf("failed to save habits: %w", err)
	}

	return &CreateHabitOutput{
		Habit: habit,
	}, nil
}
