// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/calendar"
)

// CompletionStatsResponse represents the per-day completion aggregation.
type CompletionStatsResponse struct {
	CompletedCount int     `json:"completed_count"`
	TotalCount     int     `json:"total_count"`
	Percentage     float64 `json:"percentage"`
	Level          int     `json:"level"`
}

// DayHabitResponse represents one habit row of the day view.
type DayHabitResponse struct {
	Habit     HabitResponse `json:"habit"`
	Completed bool          `json:"completed"`
}

// DayViewResponse represents the response for the day view.
type DayViewResponse struct {
	Date   string                  `json:"date"`
	Habits []DayHabitResponse      `json:"habits"`
	Stats  CompletionStatsResponse `json:"stats"`
}

// MonthCellResponse represents one cell of the month grid. Leading
// placeholder cells before day 1 serialize as JSON null.
type MonthCellResponse struct {
	Date  string                  `json:"date"`
	Day   int                     `json:"day"`
	Stats CompletionStatsResponse `json:"stats"`
}

// MonthViewResponse represents the response for the month view.
type MonthViewResponse struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Cells []*MonthCellResponse `json:"cells"`
}

// YearDayResponse represents one cell of the 371-day year grid.
type YearDayResponse struct {
	Date   string                  `json:"date"`
	InYear bool                    `json:"in_year"`
	Stats  CompletionStatsResponse `json:"stats"`
}

// YearViewResponse represents the response for the year view.
type YearViewResponse struct {
	Year int               `json:"year"`
	Days []YearDayResponse `json:"days"`
}

func toCompletionStatsResponse(stats calendar.CompletionStats) CompletionStatsResponse {
	return CompletionStatsResponse{
		CompletedCount: stats.CompletedCount,
		TotalCount:     stats.TotalCount,
		Percentage:     stats.Percentage,
		Level:          stats.Level,
	}
}

// ToDayViewResponse converts the day-view output to its DTO.
func ToDayViewResponse(output *calendar.GetDayViewOutput) DayViewResponse {
	habits := make([]DayHabitResponse, len(output.Habits))
	for i, hc := range output.Habits {
		habits[i] = DayHabitResponse{
			Habit:     ToHabitResponse(hc.Habit),
			Completed: hc.Completed,
		}
	}
	return DayViewResponse{
		Date:   output.Date,
		Habits: habits,
		Stats:  toCompletionStatsResponse(output.Stats),
	}
}

// ToMonthViewResponse converts the month-view output to its DTO.
func ToMonthViewResponse(output *calendar.GetMonthViewOutput) MonthViewResponse {
	cells := make([]*MonthCellResponse, len(output.Cells))
	for i, cell := range output.Cells {
		if cell == nil {
			continue
		}
		cells[i] = &MonthCellResponse{
			Date:  cell.Date,
			Day:   cell.Day,
			Stats: toCompletionStatsResponse(cell.Stats),
		}
	}
	return MonthViewResponse{
		Year:  output.Year,
		Month: output.Month,
		Cells: cells,
	}
}

// ToYearViewResponse converts the year-view output to its DTO.
func ToYearViewResponse(output *calendar.GetYearViewOutput) YearViewResponse {
	days := make([]YearDayResponse, len(output.Days))
	for i, day := range output.Days {
		days[i] = YearDayResponse{
			Date:   day.Date,
			InYear: day.InYear,
			Stats:  toCompletionStatsResponse(day.Stats),
		}
	}
	return YearViewResponse{
		Year: output.Year,
		Days: days,
	}
}
