// Package calendar contains calendar-aggregation use cases.
package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

type memoryHabitRepository struct {
	habits []*entity.Habit
}

func (r *memoryHabitRepository) LoadAll(_ context.Context) ([]*entity.Habit, error) {
	return r.habits, nil
}

func (r *memoryHabitRepository) SaveAll(_ context.Context, habits []*entity.Habit) error {
	r.habits = habits
	return nil
}

// memoryCache is a map-backed AggregationCache for cache behavior tests.
type memoryCache struct {
	entries map[int][]byte
	hits    int
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[int][]byte)}
}

func (c *memoryCache) GetYear(_ context.Context, year int) ([]byte, error) {
	payload, ok := c.entries[year]
	if !ok {
		return nil, nil
	}
	c.hits++
	return payload, nil
}

func (c *memoryCache) SetYear(_ context.Context, year int, payload []byte) error {
	c.entries[year] = payload
	c.sets++
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context) error {
	c.entries = make(map[int][]byte)
	return nil
}

func TestGetDayViewUseCase_Execute(t *testing.T) {
	clock := fakeClock{now: time.Date(2025, time.March, 15, 12, 0, 0, 0, time.Local)}
	habits := []*entity.Habit{
		newHabitCompletedOn("Run", "2025-03-15"),
		newHabitCompletedOn("Read"),
	}
	repo := &memoryHabitRepository{habits: habits}
	uc := NewGetDayViewUseCase(repo, clock)

	t.Run("defaults to today", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetDayViewInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Date != "2025-03-15" {
			t.Errorf("expected today's date, got %s", output.Date)
		}
		if len(output.Habits) != 2 {
			t.Fatalf("expected 2 habits, got %d", len(output.Habits))
		}
		if !output.Habits[0].Completed || output.Habits[1].Completed {
			t.Error("expected only the first habit to be completed")
		}
		if output.Stats.CompletedCount != 1 || output.Stats.TotalCount != 2 {
			t.Errorf("unexpected stats: %+v", output.Stats)
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetDayViewInput{Date: "yesterday"})
		var calErr *domainerror.CalendarError
		if !errors.As(err, &calErr) {
			t.Fatalf("expected a CalendarError, got %v", err)
		}
		if calErr.Code != domainerror.ErrCodeInvalidCalendarDate {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCalendarDate, calErr.Code)
		}
	})
}

func TestGetMonthViewUseCase_Execute(t *testing.T) {
	repo := &memoryHabitRepository{habits: []*entity.Habit{
		newHabitCompletedOn("Run", "2025-10-01"),
	}}
	uc := NewGetMonthViewUseCase(repo)

	t.Run("builds the grid with placeholders and stats", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetMonthViewInput{Year: 2025, Month: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Cells[0] != nil || output.Cells[1] != nil || output.Cells[2] != nil {
			t.Error("expected 3 leading placeholders for October 2025")
		}
		first := output.Cells[3]
		if first == nil || first.Date != "2025-10-01" || first.Day != 1 {
			t.Fatalf("unexpected first day cell: %+v", first)
		}
		if first.Stats.CompletedCount != 1 || first.Stats.Level != 4 {
			t.Errorf("unexpected stats for the completed day: %+v", first.Stats)
		}
	})

	t.Run("rejects an out-of-range month", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetMonthViewInput{Year: 2025, Month: 13})
		if !errors.Is(err, domainerror.ErrInvalidCalendarMonth) {
			t.Fatalf("expected ErrInvalidCalendarMonth, got %v", err)
		}
	})
}

func TestGetYearViewUseCase_Execute(t *testing.T) {
	repo := &memoryHabitRepository{habits: []*entity.Habit{
		newHabitCompletedOn("Run", "2025-06-01"),
	}}

	t.Run("produces 371 cells with out-of-year markers", func(t *testing.T) {
		uc := NewGetYearViewUseCase(repo, nil)
		output, err := uc.Execute(context.Background(), GetYearViewInput{Year: 2025})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Days) != 371 {
			t.Fatalf("expected 371 days, got %d", len(output.Days))
		}
		// January 1, 2025 is a Wednesday, so the grid opens with three
		// days of December 2024.
		if output.Days[0].InYear {
			t.Error("expected the grid head to be outside the requested year")
		}
		if !output.Days[3].InYear || output.Days[3].Date != "2025-01-01" {
			t.Errorf("expected cell 3 to be January 1, got %+v", output.Days[3])
		}
	})

	t.Run("serves the second request from the cache", func(t *testing.T) {
		cache := newMemoryCache()
		uc := NewGetYearViewUseCase(repo, cache)

		first, err := uc.Execute(context.Background(), GetYearViewInput{Year: 2025})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.sets != 1 {
			t.Fatalf("expected the result to be cached, sets=%d", cache.sets)
		}

		second, err := uc.Execute(context.Background(), GetYearViewInput{Year: 2025})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.hits != 1 {
			t.Errorf("expected a cache hit, hits=%d", cache.hits)
		}
		if len(second.Days) != len(first.Days) || second.Days[3] != first.Days[3] {
			t.Error("expected the cached result to match the computed one")
		}
	})
}
