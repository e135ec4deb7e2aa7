package scheduling

import "time"

// Clock is the engine's only time source. Every past-day guard compares
// against Today() read at call time, so tests inject a fixed clock instead
// of racing the wall clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}

// Today returns the UTC midnight of the clock's current day, the boundary
// used by all past-day checks.
func Today(c Clock) time.Time {
	return DayOf(c.Now())
}
