// Package calendar contains calendar-aggregation use cases.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// YearDay is one cell of the 371-day year grid. Days outside the requested
// year are generated and positioned but flagged for de-emphasized rendering.
type YearDay struct {
	Date   string
	InYear bool
	Stats  CompletionStats
}

// GetYearViewInput represents the input for the year view.
type GetYearViewInput struct {
	Year int
}

// GetYearViewOutput represents the full year grid with per-day aggregation.
type GetYearViewOutput struct {
	Year int
	Days []YearDay
}

// GetYearViewUseCase computes the year-view grid, with an advisory cache in
// front of the 371-cell aggregation. Cache entries are invalidated on every
// habit mutation and bounded by a TTL.
type GetYearViewUseCase struct {
	habitRepo adapter.HabitRepository
	cache     adapter.AggregationCache
}

// NewGetYearViewUseCase creates a new GetYearViewUseCase instance.
func NewGetYearViewUseCase(habitRepo adapter.HabitRepository, cache adapter.AggregationCache) *GetYearViewUseCase {
	return &GetYearViewUseCase{
		habitRepo: habitRepo,
		cache:     cache,
	}
}

// Execute computes the year view.
func (uc *GetYearViewUseCase) Execute(ctx context.Context, input GetYearViewInput) (*GetYearViewOutput, error) {
	if uc.cache != nil {
		if payload, err := uc.cache.GetYear(ctx, input.Year); err == nil && payload != nil {
			var cached GetYearViewOutput
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	habits, err := uc.habitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	grid := YearDays(input.Year)
	days := make([]YearDay, len(grid))
	for i, d := range grid {
		day := entity.FormatDay(d)
		days[i] = YearDay{
			Date:   day,
			InYear: d.Year() == input.Year,
			Stats:  ComputeCompletionStats(habits, day),
		}
	}

	output := &GetYearViewOutput{
		Year: input.Year,
		Days: days,
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(output); err == nil {
			_ = uc.cache.SetYear(ctx, input.Year, payload)
		}
	}

	return output, nil
}
