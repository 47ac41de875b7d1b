// Package biztime provides utilities for reporting-time calculations.
// All storage and transport use UTC. Reporting boundaries (days, weeks)
// are computed on UTC dates; implicit Local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the start of day (00:00:00) of t in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStartUTC returns the Monday 00:00:00 UTC of the week containing t.
func WeekStartUTC(t time.Time) time.Time {
	day := StartOfDayUTC(t)
	back := (int(day.Weekday()) - int(time.Monday) + 7) % 7
	return day.AddDate(0, 0, -back)
}

// DayIndex returns the zero-based offset of the UTC date of t from weekStart,
// or -1 when t falls outside [weekStart, weekStart+7d).
func DayIndex(weekStart, t time.Time) int {
	d := int(StartOfDayUTC(t).Sub(weekStart).Hours() / 24)
	if d < 0 || d > 6 {
		return -1
	}
	return d
}
