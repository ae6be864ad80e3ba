// Package calendar contains calendar-aggregation use cases.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// MonthCell is one cell of the month grid. A nil *MonthCell in the output
// slice is a leading placeholder before day 1.
type MonthCell struct {
	Date  string
	Day   int
	Stats CompletionStats
}

// GetMonthViewInput represents the input for the month view.
type GetMonthViewInput struct {
	Year  int
	Month int
}

// GetMonthViewOutput represents the month grid with per-day aggregation.
type GetMonthViewOutput struct {
	Year  int
	Month int
	Cells []*MonthCell
}

// GetMonthViewUseCase computes the month-view calendar grid.
type GetMonthViewUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewGetMonthViewUseCase creates a new GetMonthViewUseCase instance.
func NewGetMonthViewUseCase(habitRepo adapter.HabitRepository) *GetMonthViewUseCase {
	return &GetMonthViewUseCase{
		habitRepo: habitRepo,
	}
}

// Execute computes the month view.
func (uc *GetMonthViewUseCase) Execute(ctx context.Context, input GetMonthViewInput) (*GetMonthViewOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidCalendarMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidCalendarMonth,
		)
	}

	habits, err := uc.habitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	days := MonthDays(input.Year, time.Month(input.Month))
	cells := make([]*MonthCell, len(days))
	for i, d := range days {
		if d == nil {
			continue
		}
		day := entity.FormatDay(*d)
		cells[i] = &MonthCell{
			Date:  day,
			Day:   d.Day(),
			Stats: ComputeCompletionStats(habits, day),
		}
	}

	return &GetMonthViewOutput{
		Year:  input.Year,
		Month: input.Month,
		Cells: cells,
	}, nil
}
