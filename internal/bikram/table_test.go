package bikram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(days int) [MonthsPerYear]int {
	var out [MonthsPerYear]int
	for i := range out {
		out[i] = days
	}
	return out
}

func TestDefaultTable_Range(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, 2000, table.MinYear())
	assert.Equal(t, 2090, table.MaxYear())
	assert.Same(t, table, DefaultTable(), "the default table must be built once and shared")

	_, ok := table.Lookup(1999)
	assert.False(t, ok)
	_, ok = table.Lookup(2091)
	assert.False(t, ok)
}

// TestDefaultTable_Invariants walks every record of the compiled-in data.
func TestDefaultTable_Invariants(t *testing.T) {
	table := DefaultTable()

	for year := table.MinYear(); year <= table.MaxYear(); year++ {
		rec, ok := table.Lookup(year)
		require.True(t, ok, "year %d must be present", year)
		assert.Equal(t, year, rec.Year)

		// 1 Baisakh always falls in mid-April of AD year BS-57.
		assert.Equal(t, year-gregorianOffset, rec.Anchor.Year, "year %d anchor year", year)
		assert.Equal(t, time.April, rec.Anchor.Month, "year %d anchor month", year)
		assert.InDelta(t, 14, rec.Anchor.Day, 1, "year %d anchor day", year)

		for m, n := range rec.DaysInMonth {
			assert.GreaterOrEqual(t, n, 29, "year %d month %d", year, m+1)
			assert.LessOrEqual(t, n, 32, "year %d month %d", year, m+1)
		}

		if next, ok := table.Lookup(year + 1); ok {
			assert.Equal(t, next.Anchor, rec.Anchor.AddDays(rec.Length()),
				"walking all months of %d must land on the next anchor", year)
		}
	}
}

func TestTable_Lookup_ReturnsCopy(t *testing.T) {
	table := DefaultTable()

	rec, ok := table.Lookup(2082)
	require.True(t, ok)
	rec.DaysInMonth[0] = 99

	again, _ := table.Lookup(2082)
	assert.Equal(t, 31, again.DaysInMonth[0], "callers must not be able to mutate the table")
}

func TestTable_DaysInMonth(t *testing.T) {
	table := DefaultTable()

	n, ok := table.DaysInMonth(2082, 3)
	assert.True(t, ok)
	assert.Equal(t, 32, n)

	_, ok = table.DaysInMonth(2082, 0)
	assert.False(t, ok)
	_, ok = table.DaysInMonth(2082, 13)
	assert.False(t, ok)
	_, ok = table.DaysInMonth(3000, 1)
	assert.False(t, ok)

	days, ok := table.DaysInYear(2082)
	assert.True(t, ok)
	assert.Equal(t, 365, days)
}

func TestTable_Valid(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name string
		date NepaliDate
		want bool
	}{
		{"first day", Date(2082, 1, 1), true},
		{"32-day month end", Date(2082, 3, 32), true},
		{"past month end", Date(2082, 1, 32), false},
		{"day zero", Date(2082, 1, 0), false},
		{"month 13", Date(2082, 13, 1), false},
		{"unknown year", Date(1999, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Valid(tt.date))
		})
	}
}

func TestNewTable_Validation(t *testing.T) {
	base := YearRecord{Year: 2100, Anchor: CivilDate{2043, time.January, 1}, DaysInMonth: uniform(29)}
	next := YearRecord{Year: 2101, Anchor: base.Anchor.AddDays(base.Length()), DaysInMonth: uniform(30)}

	tests := []struct {
		name    string
		records []YearRecord
		wantErr error
	}{
		{"empty", nil, ErrEmptyTable},
		{"consistent", []YearRecord{base, next}, nil},
		{"gap in years", []YearRecord{base, {Year: 2102, Anchor: next.Anchor, DaysInMonth: uniform(30)}}, ErrInvalidTable},
		{"month too short", []YearRecord{{Year: 2100, Anchor: base.Anchor, DaysInMonth: uniform(28)}}, ErrInvalidTable},
		{"month too long", []YearRecord{{Year: 2100, Anchor: base.Anchor, DaysInMonth: uniform(33)}}, ErrInvalidTable},
		{"anchor mismatch", []YearRecord{base, {Year: 2101, Anchor: next.Anchor.AddDays(1), DaysInMonth: uniform(30)}}, ErrInvalidTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.records)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2100, table.MinYear())
			assert.Equal(t, 2101, table.MaxYear())
		})
	}
}

func TestCivilDate_Arithmetic(t *testing.T) {
	a := CivilDate{2024, time.February, 28}

	assert.Equal(t, CivilDate{2024, time.March, 1}, a.AddDays(2), "2024 is a leap year")
	assert.Equal(t, CivilDate{2023, time.December, 31}, CivilDate{2024, time.January, 1}.AddDays(-1))
	assert.Equal(t, 366, CivilDate{2024, time.January, 1}.DaysUntil(CivilDate{2025, time.January, 1}))
	assert.Equal(t, -5, CivilDate{2025, time.April, 14}.DaysUntil(CivilDate{2025, time.April, 9}))
	assert.Equal(t, "2024-02-28", a.String())
}

func TestCivilOf_UsesOwnLocation(t *testing.T) {
	kathmandu := time.FixedZone("NPT", 5*3600+45*60)
	// 20:00 UTC on 13 April is already 14 April in Kathmandu.
	instant := time.Date(2025, time.April, 13, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, CivilDate{2025, time.April, 13}, CivilOf(instant))
	assert.Equal(t, CivilDate{2025, time.April, 14}, CivilOf(instant.In(kathmandu)))
}
