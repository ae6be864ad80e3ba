// Package calendar contains calendar-aggregation use cases.
package calendar

import (
	"testing"
	"time"
)

func TestMonthDays(t *testing.T) {
	t.Run("month starting on a Wednesday has three leading placeholders", func(t *testing.T) {
		// October 2025 starts on a Wednesday.
		cells := MonthDays(2025, time.October)

		leading := 0
		for _, c := range cells {
			if c != nil {
				break
			}
			leading++
		}
		if leading != 3 {
			t.Errorf("expected 3 leading placeholders, got %d", leading)
		}
		if len(cells) != 3+31 {
			t.Errorf("expected 34 cells, got %d", len(cells))
		}
	})

	t.Run("month starting on a Sunday has no placeholders", func(t *testing.T) {
		// June 2025 starts on a Sunday.
		cells := MonthDays(2025, time.June)
		if cells[0] == nil {
			t.Error("expected no leading placeholders")
		}
		if len(cells) != 30 {
			t.Errorf("expected 30 cells, got %d", len(cells))
		}
	})

	t.Run("no trailing placeholders", func(t *testing.T) {
		cells := MonthDays(2025, time.February)
		last := cells[len(cells)-1]
		if last == nil {
			t.Fatal("expected the last cell to be a real day")
		}
		if last.Day() != 28 {
			t.Errorf("expected the last cell to be day 28, got %d", last.Day())
		}
	})

	t.Run("leap year February has 29 days", func(t *testing.T) {
		cells := MonthDays(2024, time.February)
		last := cells[len(cells)-1]
		if last == nil || last.Day() != 29 {
			t.Error("expected February 2024 to end on day 29")
		}
	})
}

func TestYearDays(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025, 2026} {
		days := YearDays(year)

		if len(days) != 371 {
			t.Errorf("year %d: expected 371 cells, got %d", year, len(days))
		}
		if days[0].Weekday() != time.Sunday {
			t.Errorf("year %d: expected the grid to start on a Sunday, got %s", year, days[0].Weekday())
		}
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
		if days[0].After(jan1) {
			t.Errorf("year %d: grid start %s is after January 1", year, days[0])
		}
		if jan1.Sub(days[0]) >= 7*24*time.Hour {
			t.Errorf("year %d: grid start %s is more than a week before January 1", year, days[0])
		}
		for i := 1; i < len(days); i++ {
			if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
				t.Fatalf("year %d: days %d and %d are not consecutive", year, i-1, i)
			}
		}
	}
}
