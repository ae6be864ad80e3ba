// Package entity defines the core business entities for the domain layer.
package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// DayFormat is the calendar-date layout used for completion dates.
const DayFormat = "2006-01-02"

// DefaultHabitColor is the color assigned to a habit when none is chosen.
const DefaultHabitColor = "#0ea5e9"

// HabitColorPalette is the fixed set of colors a habit can be created with.
// There is no uniqueness constraint; multiple habits may share a color.
var HabitColorPalette = []string{
	"#0ea5e9",
	"#10b981",
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#06b6d4",
	"#84cc16",
	"#f97316",
}

// Habit represents a tracked habit and its completion history.
//
// CompletedDates holds YYYY-MM-DD local-calendar dates, unique and sorted
// ascending. Streak and CompletedToday are derived from CompletedDates; the
// store recomputes both on every mutation.
type Habit struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Color          string
	Streak         int
	CompletedToday bool
	CompletedDates []string
	CreatedAt      time.Time
}

// NewHabit creates a new Habit entity with an empty completion history.
func NewHabit(name, description, color string) *Habit {
	return &Habit{
		ID:             uuid.New(),
		Name:           name,
		Description:    description,
		Color:          color,
		Streak:         0,
		CompletedToday: false,
		CompletedDates: []string{},
		CreatedAt:      time.Now().UTC(),
	}
}

// FormatDay truncates a timestamp to its YYYY-MM-DD calendar date.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay validates a YYYY-MM-DD calendar-date string.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(DayFormat, day)
}

// IsCompletedOn reports whether the habit was marked done on the given day.
func (h *Habit) IsCompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// AddCompletedDate inserts a day into the completion history, keeping the
// list sorted ascending. Inserting a day already present is a no-op.
func (h *Habit) AddCompletedDate(day string) {
	if h.IsCompletedOn(day) {
		return
	}
	h.CompletedDates = append(h.CompletedDates, day)
	sort.Strings(h.CompletedDates)
}

// RemoveCompletedDate removes a day from the completion history. Removing a
// day that is not present is a no-op.
func (h *Habit) RemoveCompletedDate(day string) {
	for i, d := range h.CompletedDates {
		if d == day {
			h.CompletedDates = append(h.CompletedDates[:i], h.CompletedDates[i+1:]...)
			return
		}
	}
}
