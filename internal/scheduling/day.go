package scheduling

import "time"

// Calendar-day arithmetic shared by the reconciler, the dispatch operations
// and the board queries. A "day" is always its UTC midnight; inclusive range
// ends are normalized to the last second of their calendar day so that the
// final working day is covered.

// DayOf truncates an instant to its calendar day's UTC midnight.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last second of t's calendar day in UTC.
func EndOfDay(t time.Time) time.Time {
	return DayOf(t).AddDate(0, 0, 1).Add(-time.Second)
}

// SameDay reports whether two instants fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// IsWeekend reports whether the day is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysBetween lists every calendar day of the inclusive range [from, to] as
// UTC midnights. An inverted range yields nil.
func DaysBetween(from, to time.Time) []time.Time {
	start := DayOf(from)
	end := DayOf(to)
	if end.Before(start) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WorkingDays lists the days of [from, to], skipping weekends unless
// includeWeekends is set.
func WorkingDays(from, to time.Time, includeWeekends bool) []time.Time {
	var days []time.Time
	for _, d := range DaysBetween(from, to) {
		if !includeWeekends && IsWeekend(d) {
			continue
		}
		days = append(days, d)
	}
	return days
}

// MaxDay returns the later of two days.
func MaxDay(a, b time.Time) time.Time {
	if DayOf(a).After(DayOf(b)) {
		return DayOf(a)
	}
	return DayOf(b)
}

// MinDay returns the earlier of two days.
func MinDay(a, b time.Time) time.Time {
	if DayOf(a).Before(DayOf(b)) {
		return DayOf(a)
	}
	return DayOf(b)
}
