// Package habit contains habit-related use cases.
package habit

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CalculateStreak computes the current consecutive-day streak ending at the
// given day. It walks backward one calendar day at a time starting from
// today and counts while each day is present in the completion history,
// stopping at the first absent day. A habit not completed today has a
// streak of 0 regardless of prior history.
//
// The function is pure: "today" is the caller's injected clock reading.
func CalculateStreak(completedDates []string, today time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}

	completed := make(map[string]struct{}, len(completedDates))
	for _, d := range completedDates {
		completed[d] = struct{}{}
	}

	streak := 0
	current := today
	// At most len(completedDates) consecutive days can be present.
	for i := 0; i < len(completedDates); i++ {
		if _, ok := completed[entity.FormatDay(current)]; !ok {
			break
		}
		streak++
		current = current.AddDate(0, 0, -1)
	}

	return streak
}

// IsCompletedToday reports whether the habit's completion history contains
// today's calendar date. Call sites use this instead of the stored
// CompletedToday flag, which may be stale across day boundaries.
func IsCompletedToday(h *entity.Habit, today time.Time) bool {
	return h.IsCompletedOn(entity.FormatDay(today))
}

// refreshDerived recomputes the habit's derived fields from its completion
// history. The store calls this on every mutation so the stored streak
// always equals CalculateStreak over the stored dates.
func refreshDerived(h *entity.Habit, today time.Time) {
	h.Streak = CalculateStreak(h.CompletedDates, today)
	h.CompletedToday = IsCompletedToday(h, today)
}
