package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"midnight stays", day("2025-03-10"), day("2025-03-10")},
		{"midday truncates", day("2025-03-10").Add(13*time.Hour + 37*time.Minute), day("2025-03-10")},
		{"last second truncates", day("2025-03-10").Add(24*time.Hour - time.Second), day("2025-03-10")},
		{"non-UTC converts first", time.Date(2025, 3, 10, 23, 30, 0, 0, time.FixedZone("CET", 3600)), day("2025-03-10")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayOf(tt.in))
		})
	}
}

func TestEndOfDay(t *testing.T) {
	got := EndOfDay(day("2025-03-10").Add(9 * time.Hour))
	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC), got)

	// end of day of a month boundary
	got = EndOfDay(day("2025-01-31"))
	assert.Equal(t, time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC), got)
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(day("2025-03-10"), day("2025-03-10").Add(23*time.Hour)))
	assert.False(t, SameDay(day("2025-03-10").Add(23*time.Hour), day("2025-03-11")))
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(day("2025-03-10"))) // Monday
	assert.True(t, IsWeekend(day("2025-03-15"))) // Saturday
	assert.True(t, IsWeekend(day("2025-03-16"))) // Sunday
	assert.False(t, IsWeekend(day("2025-03-17")))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"single day", day("2025-03-10"), day("2025-03-10"), 1},
		{"three days inclusive", day("2025-03-10"), day("2025-03-12"), 3},
		{"instants truncate to days", day("2025-03-10").Add(22 * time.Hour), day("2025-03-12").Add(time.Hour), 3},
		{"inverted range yields nothing", day("2025-03-12"), day("2025-03-10"), 0},
		{"month boundary", day("2025-01-30"), day("2025-02-02"), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := DaysBetween(tt.from, tt.to)
			assert.Len(t, days, tt.want)
			for i := 1; i < len(days); i++ {
				assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i], "days must be consecutive")
			}
		})
	}
}

func TestWorkingDays(t *testing.T) {
	// Mon 2025-03-10 .. Sun 2025-03-16
	withWeekends := WorkingDays(day("2025-03-10"), day("2025-03-16"), true)
	assert.Len(t, withWeekends, 7)

	withoutWeekends := WorkingDays(day("2025-03-10"), day("2025-03-16"), false)
	assert.Len(t, withoutWeekends, 5)
	for _, d := range withoutWeekends {
		assert.False(t, IsWeekend(d))
	}
}

func TestMinMaxDay(t *testing.T) {
	a, b := day("2025-03-10"), day("2025-03-12")
	assert.Equal(t, b, MaxDay(a, b))
	assert.Equal(t, b, MaxDay(b, a))
	assert.Equal(t, a, MinDay(a, b))
	assert.Equal(t, a, MinDay(b, a))
	assert.Equal(t, a, MaxDay(a, a))
}
