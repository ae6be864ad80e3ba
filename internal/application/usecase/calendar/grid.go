// Package calendar contains calendar-aggregation use cases.
package calendar

import "time"

// yearGridDays is the fixed size of the year grid: 53 weeks of 7 days.
const yearGridDays = 371

// MonthDays generates the cell sequence for a month view: one nil
// placeholder per weekday preceding day 1 (Sunday = 0), then one entry per
// actual day of the month. There are no trailing placeholders.
func MonthDays(year int, month time.Month) []*time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]*time.Time, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		cells = append(cells, &d)
	}

	return cells
}

// YearDays generates the 371 consecutive days of a year grid, starting from
// the Sunday on-or-before January 1. The tail may run into the next year
// and the head into the previous one; callers mark those cells as outside
// the requested year rather than excluding them.
func YearDays(year int) []time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	start := jan1.AddDate(0, 0, -int(jan1.Weekday()))

	days := make([]time.Time, yearGridDays)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}

	return days
}
