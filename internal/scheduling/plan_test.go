package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSeedDays(t *testing.T) {
	today := day("2025-03-10")

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want []time.Time
	}{
		{
			name: "fully future range seeds every day",
			from: day("2025-03-12"),
			to:   day("2025-03-14"),
			want: []time.Time{day("2025-03-12"), day("2025-03-13"), day("2025-03-14")},
		},
		{
			name: "range starting in the past seeds from today",
			from: day("2025-03-08"),
			to:   day("2025-03-11"),
			want: []time.Time{day("2025-03-10"), day("2025-03-11")},
		},
		{
			name: "fully past range seeds nothing",
			from: day("2025-03-01"),
			to:   day("2025-03-05"),
			want: nil,
		},
		{
			name: "single day today",
			from: day("2025-03-10"),
			to:   day("2025-03-10"),
			want: []time.Time{day("2025-03-10")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SeedDays(tt.from, tt.to, today)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangeEditMovesStartIntoPast(t *testing.T) {
	today := day("2025-03-10")

	tests := []struct {
		name string
		edit RangeEdit
		want bool
	}{
		{
			name: "start moved before today is rejected",
			edit: RangeEdit{OldFrom: day("2025-03-11"), NewFrom: day("2025-03-08"), Today: today},
			want: true,
		},
		{
			name: "unchanged past start is tolerated",
			edit: RangeEdit{OldFrom: day("2025-03-05"), NewFrom: day("2025-03-05"), Today: today},
			want: false,
		},
		{
			name: "start moved within the future is fine",
			edit: RangeEdit{OldFrom: day("2025-03-12"), NewFrom: day("2025-03-11"), Today: today},
			want: false,
		},
		{
			name: "start moved to today is fine",
			edit: RangeEdit{OldFrom: day("2025-03-12"), NewFrom: day("2025-03-10"), Today: today},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.edit.MovesStartIntoPast())
		})
	}
}

func TestRangeEditDaysToAdd(t *testing.T) {
	today := day("2025-03-10")

	tests := []struct {
		name string
		edit RangeEdit
		want []time.Time
	}{
		{
			name: "trailing expansion adds the new tail days",
			edit: RangeEdit{
				OldFrom: day("2025-03-11"), OldTo: day("2025-03-12"),
				NewFrom: day("2025-03-11"), NewTo: day("2025-03-14"),
				Today: today,
			},
			want: []time.Time{day("2025-03-13"), day("2025-03-14")},
		},
		{
			name: "leading expansion adds the new head days",
			edit: RangeEdit{
				OldFrom: day("2025-03-13"), OldTo: day("2025-03-14"),
				NewFrom: day("2025-03-11"), NewTo: day("2025-03-14"),
				Today: today,
			},
			want: []time.Time{day("2025-03-11"), day("2025-03-12")},
		},
		{
			name: "leading expansion into the past is floored at today",
			edit: RangeEdit{
				OldFrom: day("2025-03-12"), OldTo: day("2025-03-13"),
				NewFrom: day("2025-03-07"), NewTo: day("2025-03-13"),
				Today: today,
			},
			want: []time.Time{day("2025-03-10"), day("2025-03-11")},
		},
		{
			name: "expansion on both ends",
			edit: RangeEdit{
				OldFrom: day("2025-03-12"), OldTo: day("2025-03-12"),
				NewFrom: day("2025-03-11"), NewTo: day("2025-03-13"),
				Today: today,
			},
			want: []time.Time{day("2025-03-11"), day("2025-03-13")},
		},
		{
			name: "shrink adds nothing",
			edit: RangeEdit{
				OldFrom: day("2025-03-11"), OldTo: day("2025-03-15"),
				NewFrom: day("2025-03-12"), NewTo: day("2025-03-13"),
				Today: today,
			},
			want: nil,
		},
		{
			name: "trailing gap already entirely in the past adds nothing",
			edit: RangeEdit{
				OldFrom: day("2025-03-01"), OldTo: day("2025-03-02"),
				NewFrom: day("2025-03-01"), NewTo: day("2025-03-05"),
				Today: today,
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.edit.DaysToAdd()
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangeEditShouldArchive(t *testing.T) {
	edit := RangeEdit{
		OldFrom: day("2025-03-08"), OldTo: day("2025-03-16"),
		NewFrom: day("2025-03-11"), NewTo: day("2025-03-13"),
		Today: day("2025-03-10"),
	}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"past day outside new range stays", day("2025-03-08"), false},
		{"today outside new range is archived", day("2025-03-10"), true},
		{"day inside new range stays", day("2025-03-12"), false},
		{"future day past new end is archived", day("2025-03-15"), true},
		{"new range boundaries stay", day("2025-03-11"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, edit.ShouldArchive(tt.day))
		})
	}
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, ClampIndex(-3, 5))
	assert.Equal(t, 0, ClampIndex(0, 5))
	assert.Equal(t, 3, ClampIndex(3, 5))
	assert.Equal(t, 5, ClampIndex(5, 5))
	assert.Equal(t, 5, ClampIndex(9, 5))
	assert.Equal(t, 0, ClampIndex(4, 0))
}

func TestReorder(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	ids := []uuid.UUID{a, b, c, d}

	tests := []struct {
		name     string
		target   uuid.UUID
		newIndex int
		want     []uuid.UUID
	}{
		{"move forward", b, 2, []uuid.UUID{a, c, b, d}},
		{"move backward", d, 0, []uuid.UUID{d, a, b, c}},
		{"move to same place", c, 2, []uuid.UUID{a, b, c, d}},
		{"index past the end clamps to last", a, 99, []uuid.UUID{b, c, d, a}},
		{"negative index clamps to first", c, -1, []uuid.UUID{c, a, b, d}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reorder(ids, tt.target, tt.newIndex)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(ids))
		})
	}

	t.Run("absent target leaves order unchanged", func(t *testing.T) {
		got := Reorder(ids, uuid.New(), 1)
		assert.Equal(t, ids, got)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		before := append([]uuid.UUID(nil), ids...)
		Reorder(ids, b, 3)
		assert.Equal(t, before, ids)
	})
}
