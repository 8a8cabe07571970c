package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/engine"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

func TestCalendarTitle(t *testing.T) {
	assert.Equal(t, "Magh 2082", calendarTitle(bikram.Date(2082, 10, 1), locale.English))
	assert.Equal(t, "बैशाख २०८१", calendarTitle(bikram.Date(2081, 1, 15), locale.Nepali))
}

func TestCellText(t *testing.T) {
	nd := bikram.Date(2082, 10, 9)
	cell := engine.DayCell{Nepali: &nd, Gregorian: time.Date(2026, 1, 23, 0, 0, 0, 0, time.UTC), InMonth: true}

	tests := []struct {
		name string
		cell engine.DayCell
		lang locale.Language
		want string
	}{
		{"blank", engine.DayCell{}, locale.English, ""},
		{"english", cell, locale.English, "9\n23"},
		{"nepali", cell, locale.Nepali, "९\n23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cellText(tt.cell, tt.lang))
		})
	}
}

// TestNextRollover checks that the refresh lands on local midnight,
// including for zones with a non-hour offset.
func TestNextRollover(t *testing.T) {
	kathmandu := time.FixedZone("NPT", 5*3600+45*60)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "morning",
			now:  time.Date(2026, 1, 15, 10, 0, 0, 0, kathmandu),
			want: time.Date(2026, 1, 16, 0, 0, 0, 0, kathmandu),
		},
		{
			name: "exactly midnight moves to the next day",
			now:  time.Date(2026, 1, 15, 0, 0, 0, 0, kathmandu),
			want: time.Date(2026, 1, 16, 0, 0, 0, 0, kathmandu),
		},
		{
			name: "year end",
			now:  time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
			want: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(nextRollover(tt.now)), "got %v", nextRollover(tt.now))
		})
	}
}

func TestStartRolloverScheduler(t *testing.T) {
	c, err := startRolloverScheduler(func() {})
	require.NoError(t, err)
	defer c.Stop()

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Next.After(time.Now()))
}
