package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Planning primitives for the reconciler and the dispatch operations. All
// functions are pure; the services translate their output into row mutations
// inside one transaction.

// SeedDays lists the days that receive an assignment when a mission covering
// [from, to] is created: every day of the range from today onward. Days
// already in the past are never seeded.
func SeedDays(from, to, today time.Time) []time.Time {
	return DaysBetween(MaxDay(from, today), to)
}

// RangeEdit captures a mission date-range change being reconciled.
type RangeEdit struct {
	OldFrom time.Time
	OldTo   time.Time
	NewFrom time.Time
	NewTo   time.Time
	Today   time.Time
}

// MovesStartIntoPast reports whether the edit tries to move a changed start
// date before today, which reconciliation rejects.
func (e RangeEdit) MovesStartIntoPast() bool {
	return !SameDay(e.NewFrom, e.OldFrom) && DayOf(e.NewFrom).Before(DayOf(e.Today))
}

// DaysToAdd lists the days gaining an assignment: the leading gap
// [newFrom, oldFrom) and the trailing gap (oldTo, newTo], both floored at
// today.
func (e RangeEdit) DaysToAdd() []time.Time {
	today := DayOf(e.Today)
	var days []time.Time
	if DayOf(e.NewFrom).Before(DayOf(e.OldFrom)) {
		days = append(days, DaysBetween(MaxDay(e.NewFrom, today), DayOf(e.OldFrom).AddDate(0, 0, -1))...)
	}
	if DayOf(e.NewTo).After(DayOf(e.OldTo)) {
		days = append(days, DaysBetween(MaxDay(DayOf(e.OldTo).AddDate(0, 0, 1), today), e.NewTo)...)
	}
	return days
}

// ShouldArchive reports whether an active assignment on the given day fell
// out of the new range. Days before today are history and stay untouched
// regardless of the shrink.
func (e RangeEdit) ShouldArchive(day time.Time) bool {
	d := DayOf(day)
	if d.Before(DayOf(e.Today)) {
		return false
	}
	return d.Before(DayOf(e.NewFrom)) || d.After(DayOf(e.NewTo))
}

// ClampIndex clamps a requested position to [0, size].
func ClampIndex(requested, size int) int {
	if requested < 0 {
		return 0
	}
	if requested > size {
		return size
	}
	return requested
}

// Reorder moves target to newIndex within ids and returns the resulting
// order. Positions are dense by construction: the caller renumbers the whole
// result 0..n-1, which also repairs any gaps left by earlier unassigns. If
// target is absent, ids is returned unchanged.
func Reorder(ids []uuid.UUID, target uuid.UUID, newIndex int) []uuid.UUID {
	rest := make([]uuid.UUID, 0, len(ids))
	found := false
	for _, id := range ids {
		if id == target {
			found = true
			continue
		}
		rest = append(rest, id)
	}
	if !found {
		return ids
	}
	newIndex = ClampIndex(newIndex, len(rest))
	out := make([]uuid.UUID, 0, len(ids))
	out = append(out, rest[:newIndex]...)
	out = append(out, target)
	out = append(out, rest[newIndex:]...)
	return out
}
