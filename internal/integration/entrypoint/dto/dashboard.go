// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the dashboard summary.
type SummaryResponse struct {
	TotalHabits    int     `json:"total_habits"`
	CompletedToday int     `json:"completed_today"`
	CompletionRate float64 `json:"completion_rate"`
	BestStreak     int     `json:"best_streak"`
}

// ToSummaryResponse converts the summary output to its DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalHabits:    output.TotalHabits,
		CompletedToday: output.CompletedToday,
		CompletionRate: output.CompletionRate,
		BestStreak:     output.BestStreak,
	}
}
