package bikram

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNepali_KnownDates(t *testing.T) {
	conv := Default()

	tests := []struct {
		name string
		ad   CivilDate
		want NepaliDate
	}{
		{"new year 2082", CivilDate{2025, time.April, 14}, Date(2082, 1, 1)},
		{"day before new year", CivilDate{2025, time.April, 13}, Date(2081, 12, 31)},
		{"Magh 1 2082", CivilDate{2026, time.January, 15}, Date(2082, 10, 1)},
		{"millennium", CivilDate{2000, time.January, 1}, Date(2056, 9, 17)},
		{"year end AD", CivilDate{2025, time.December, 31}, Date(2082, 9, 16)},
		{"autumn 2026", CivilDate{2026, time.October, 19}, Date(2083, 7, 2)},
		{"first supported day", CivilDate{1943, time.April, 14}, Date(2000, 1, 1)},
		{"last supported AD day", CivilDate{2033, time.December, 31}, Date(2090, 9, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.ToNepali(tt.ad.Year, tt.ad.Month, tt.ad.Day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToNepali_RangeBoundary(t *testing.T) {
	conv := Default()

	// 1943 maps to approximate year 2000, but dates before its anchor need 1999.
	_, err := conv.ToNepali(1943, time.April, 13)
	assert.ErrorIs(t, err, ErrUnsupportedYear)

	// One below the minimum approximate year.
	_, err = conv.ToNepali(1942, time.June, 1)
	assert.ErrorIs(t, err, ErrUnsupportedYear)

	// One above the maximum approximate year.
	_, err = conv.ToNepali(2034, time.January, 1)
	assert.ErrorIs(t, err, ErrUnsupportedYear)
}

func TestToNepali_BackwardWalk(t *testing.T) {
	conv := Default()
	table := conv.Table()

	for _, year := range []int{2001, 2045, 2082, 2090} {
		rec, _ := table.Lookup(year)
		prev, _ := table.Lookup(year - 1)
		target := rec.Anchor.AddDays(-5)

		got, err := conv.ToNepali(target.Year, target.Month, target.Day)
		require.NoError(t, err)
		assert.Equal(t, Date(year-1, 12, prev.DaysInMonth[11]-4), got, "five days before 1 Baisakh %d", year)
	}
}

func TestToGregorian_AnchorIdentity(t *testing.T) {
	conv := Default()
	table := conv.Table()

	for year := table.MinYear(); year <= table.MaxYear(); year++ {
		rec, _ := table.Lookup(year)
		got, err := conv.ToCivil(Date(year, 1, 1))
		require.NoError(t, err)
		assert.Equal(t, rec.Anchor, got, "1 Baisakh %d", year)
	}
}

func TestToGregorian(t *testing.T) {
	conv := Default()

	got, err := conv.ToGregorian(Date(2082, 10, 1))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = conv.ToGregorian(Date(2082, 8, 1))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC), got)
}

func TestToGregorian_Rejections(t *testing.T) {
	conv := Default()

	tests := []struct {
		name    string
		date    NepaliDate
		wantErr error
	}{
		{"year below range", Date(1999, 1, 1), ErrUnsupportedYear},
		{"year above range", Date(2091, 1, 1), ErrUnsupportedYear},
		{"day past month end", Date(2082, 1, 35), ErrInvalidDate},
		{"day zero", Date(2082, 1, 0), ErrInvalidDate},
		{"month zero", Date(2082, 0, 1), ErrInvalidDate},
		{"month thirteen", Date(2082, 13, 1), ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conv.ToGregorian(tt.date)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestRoundTrip converts every day of every supported year to AD and back.
// Days whose AD year maps beyond the last table year cannot be looked up
// (approximate year 2091) and are expected to fail.
func TestRoundTrip(t *testing.T) {
	conv := Default()
	table := conv.Table()
	unsupported := 0

	for year := table.MinYear(); year <= table.MaxYear(); year++ {
		for month := 1; month <= MonthsPerYear; month++ {
			n, _ := table.DaysInMonth(year, month)
			for day := 1; day <= n; day++ {
				d := Date(year, month, day)
				ad, err := conv.ToCivil(d)
				require.NoError(t, err)

				back, err := conv.ToNepali(ad.Year, ad.Month, ad.Day)
				if ad.Year+gregorianOffset > table.MaxYear() {
					assert.ErrorIs(t, err, ErrUnsupportedYear)
					unsupported++
					continue
				}
				require.NoError(t, err, "date %s (%s)", d, ad)
				require.Equal(t, d, back, "AD %s", ad)
			}
		}
	}

	assert.Equal(t, 104, unsupported, "only the tail of 2090 falls in AD 2034")
}

// forwardTable starts year 2100 on 1 January AD 2043 with 29-day months, so
// the last days of December belong to 2101 while still approximating to 2100.
func forwardTable(t *testing.T, withNext bool) *Table {
	t.Helper()
	first := YearRecord{Year: 2100, Anchor: CivilDate{2043, time.January, 1}, DaysInMonth: uniform(29)}
	records := []YearRecord{first}
	if withNext {
		records = append(records, YearRecord{Year: 2101, Anchor: first.Anchor.AddDays(first.Length()), DaysInMonth: uniform(30)})
	}
	table, err := NewTable(records)
	require.NoError(t, err)
	return table
}

func TestToNepali_ForwardOverflow(t *testing.T) {
	conv := NewConverter(forwardTable(t, true))

	// 348 days after 1 January is 15 December, 1 Baisakh 2101.
	got, err := conv.ToNepali(2043, time.December, 15)
	require.NoError(t, err)
	assert.Equal(t, Date(2101, 1, 1), got)

	got, err = conv.ToNepali(2043, time.December, 20)
	require.NoError(t, err)
	assert.Equal(t, Date(2101, 1, 6), got)
}

func TestToNepali_ForwardOverflowWithoutNextYear(t *testing.T) {
	conv := NewConverter(forwardTable(t, false))

	_, err := conv.ToNepali(2043, time.December, 20)
	assert.ErrorIs(t, err, ErrUnsupportedYear)
}

func TestWalkForward_RepeatedOverflow(t *testing.T) {
	conv := NewConverter(forwardTable(t, true))
	rec, _ := conv.Table().Lookup(2100)

	_, err := conv.walkForward(rec, rec.Length()+1, maxYearOverflow)
	assert.ErrorIs(t, err, ErrTraversalUnderflow)
}

func TestToNepali_BackwardUnderflow(t *testing.T) {
	// 2100 starts on 31 December 2043; 2099 starts 348 days earlier on
	// 17 January, so early January cannot be reached walking back from 2100.
	anchor := CivilDate{2043, time.December, 31}
	prev := YearRecord{Year: 2099, Anchor: anchor.AddDays(-348), DaysInMonth: uniform(29)}
	table, err := NewTable([]YearRecord{prev, {Year: 2100, Anchor: anchor, DaysInMonth: uniform(30)}})
	require.NoError(t, err)
	conv := NewConverter(table)

	_, err = conv.ToNepali(2043, time.January, 10)
	assert.ErrorIs(t, err, ErrTraversalUnderflow)

	got, err := conv.ToNepali(2043, time.January, 17)
	require.NoError(t, err)
	assert.Equal(t, Date(2099, 1, 1), got)
}

func TestToNepaliTime_And_Today(t *testing.T) {
	conv := Default()
	kathmandu := time.FixedZone("NPT", 5*3600+45*60)
	instant := time.Date(2025, time.April, 13, 20, 0, 0, 0, time.UTC)

	got, err := conv.ToNepaliTime(instant)
	require.NoError(t, err)
	assert.Equal(t, Date(2081, 12, 31), got)

	got, err = conv.Today(FixedClock(instant.In(kathmandu)))
	require.NoError(t, err)
	assert.Equal(t, Date(2082, 1, 1), got, "today follows the clock's location")

	_, err = conv.Today(FixedClock(time.Date(2040, time.May, 1, 0, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrUnsupportedYear)
}

func TestAddDays(t *testing.T) {
	conv := Default()

	got, err := conv.AddDays(Date(2081, 12, 31), 1)
	require.NoError(t, err)
	assert.Equal(t, Date(2082, 1, 1), got)

	got, err = conv.AddDays(Date(2082, 1, 1), -5)
	require.NoError(t, err)
	assert.Equal(t, Date(2081, 12, 27), got)

	_, err = conv.AddDays(Date(2082, 1, 40), 1)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAddMonths(t *testing.T) {
	conv := Default()

	tests := []struct {
		name string
		from NepaliDate
		n    int
		want NepaliDate
	}{
		{"next month", Date(2082, 1, 15), 1, Date(2082, 2, 15)},
		{"year carry", Date(2082, 12, 10), 1, Date(2083, 1, 10)},
		{"previous year", Date(2082, 1, 10), -1, Date(2081, 12, 10)},
		{"clamped day", Date(2082, 3, 32), 1, Date(2082, 4, 31)},
		{"several years back", Date(2082, 5, 1), -25, Date(2080, 4, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.AddMonths(tt.from, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := conv.AddMonths(Date(2090, 12, 1), 1)
	assert.ErrorIs(t, err, ErrUnsupportedYear)
	_, err = conv.AddMonths(Date(2082, 14, 1), 1)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestConverter_ConcurrentUse(t *testing.T) {
	conv := Default()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			day := CivilDate{2025, time.April, 14}.AddDays(offset)
			got, err := conv.ToNepali(day.Year, day.Month, day.Day)
			assert.NoError(t, err)
			assert.Equal(t, Date(2082, 1, 1+offset), got)
		}(i)
	}
	wg.Wait()
}

func TestNepaliDate_Compare(t *testing.T) {
	a := Date(2082, 1, 1)

	assert.Equal(t, 0, a.Compare(Date(2082, 1, 1)))
	assert.True(t, a.Before(Date(2082, 1, 2)))
	assert.True(t, Date(2081, 12, 30).Before(a))
	assert.Equal(t, 1, Date(2082, 2, 1).Compare(a))
	assert.Equal(t, Date(2082, 7, 1), Date(2082, 7, 19).FirstOfMonth())
	assert.Equal(t, "2082/01/01", a.String())
}
