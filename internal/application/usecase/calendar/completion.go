// Package calendar contains calendar-aggregation use cases.
package calendar

import "github.com/habit-tracker/backend/internal/domain/entity"

// CompletionStats holds the per-day completion aggregation across habits.
type CompletionStats struct {
	CompletedCount int
	TotalCount     int
	Percentage     float64
	Level          int
}

// ComputeCompletionStats aggregates completion across all habits for one
// calendar date.
//
// TotalCount is the full habit collection for every date, including dates
// before a habit was created; this mirrors the reference behavior exactly.
// Percentage is defined as 0 when there are no habits.
func ComputeCompletionStats(habits []*entity.Habit, day string) CompletionStats {
	total := len(habits)
	if total == 0 {
		return CompletionStats{}
	}

	completed := 0
	for _, h := range habits {
		if h.IsCompletedOn(day) {
			completed++
		}
	}

	percentage := float64(completed) / float64(total) * 100

	return CompletionStats{
		CompletedCount: completed,
		TotalCount:     total,
		Percentage:     percentage,
		Level:          completionLevel(percentage),
	}
}

// completionLevel maps a completion percentage onto the five visual buckets.
// The first bucket covers only the exact value 0 so that any completion at
// all is visually distinct from none.
func completionLevel(percentage float64) int {
	switch {
	case percentage == 0:
		return 0
	case percentage <= 25:
		return 1
	case percentage <= 50:
		return 2
	case percentage <= 75:
		return 3
	default:
		return 4
	}
}
