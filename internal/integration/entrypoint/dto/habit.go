// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// ToggleCompletionRequest represents the request body for toggling a
// habit's completion. The date is optional and defaults to today.
type ToggleCompletionRequest struct {
	Date string `json:"date"`
}

// HabitResponse represents a habit in API responses. The field names match
// the stored document format.
type HabitResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Color          string   `json:"color"`
	Streak         int      `json:"streak"`
	CompletedToday bool     `json:"completedToday"`
	CompletedDates []string `json:"completedDates"`
	CreatedAt      string   `json:"createdAt"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits []HabitResponse `json:"habits"`
}

// ToggleCompletionResponse represents the response for a toggle.
type ToggleCompletionResponse struct {
	Habit     HabitResponse `json:"habit"`
	Completed bool          `json:"completed"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(habit *entity.Habit) HabitResponse {
	completedDates := habit.CompletedDates
	if completedDates == nil {
		completedDates = []string{}
	}

	return HabitResponse{
		ID:             habit.ID.String(),
		Name:           habit.Name,
		Description:    habit.Description,
		Color:          habit.Color,
		Streak:         habit.Streak,
		CompletedToday: habit.CompletedToday,
		CompletedDates: completedDates,
		CreatedAt:      habit.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToHabitListResponse converts a slice of habits to a HabitListResponse DTO.
func ToHabitListResponse(habits []*entity.Habit) HabitListResponse {
	responses := make([]HabitResponse, len(habits))
	for i, h := range habits {
		responses[i] = ToHabitResponse(h)
	}
	return HabitListResponse{Habits: responses}
}
