package bikram

import "time"

const (
	// gregorianOffset approximates BS year = AD year + 57. It is exact from
	// mid-April to December; earlier dates walk back into the previous year.
	gregorianOffset = 57

	// maxYearOverflow bounds how many times a forward walk may roll into the
	// following year. A consistent table never needs more than one.
	maxYearOverflow = 1
)

// Converter maps between Gregorian dates and NepaliDate using a Table.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	table *Table
}

// NewConverter returns a Converter backed by table.
func NewConverter(table *Table) *Converter {
	return &Converter{table: table}
}

// Default returns a Converter backed by DefaultTable.
func Default() *Converter {
	return NewConverter(DefaultTable())
}

// Table exposes the table the converter reads from.
func (c *Converter) Table() *Table {
	return c.table
}

// ToNepali converts a Gregorian calendar date to its BS date.
func (c *Converter) ToNepali(year int, month time.Month, day int) (NepaliDate, error) {
	return c.fromCivil(CivilDate{Year: year, Month: month, Day: day})
}

// ToNepaliTime converts the calendar date of t, in t's location.
func (c *Converter) ToNepaliTime(t time.Time) (NepaliDate, error) {
	return c.fromCivil(CivilOf(t))
}

// Today converts the current date reported by clock.
func (c *Converter) Today(clock Clock) (NepaliDate, error) {
	return c.ToNepaliTime(clock.Now())
}

func (c *Converter) fromCivil(target CivilDate) (NepaliDate, error) {
	approx := target.Year + gregorianOffset
	rec, ok := c.table.Lookup(approx)
	if !ok {
		return NepaliDate{}, ErrUnsupportedYear
	}

	diff := rec.Anchor.DaysUntil(target)
	if diff >= 0 {
		return c.walkForward(rec, diff, 0)
	}

	prev, ok := c.table.Lookup(approx - 1)
	if !ok {
		return NepaliDate{}, ErrUnsupportedYear
	}
	// The last day of Chaitra is one day before the anchor.
	return walkBackward(prev, -diff-1)
}

// walkForward moves offset days forward from 1 Baisakh of rec. Running past
// Chaitra continues in the following year with the leftover days.
func (c *Converter) walkForward(rec YearRecord, offset, overflow int) (NepaliDate, error) {
	month, day := 1, 1
	for offset > 0 {
		left := rec.DaysInMonth[month-1] - day + 1
		if offset < left {
			day += offset
			break
		}
		offset -= left
		month++
		day = 1
		if month > MonthsPerYear {
			if overflow >= maxYearOverflow {
				return NepaliDate{}, ErrTraversalUnderflow
			}
			next, ok := c.table.Lookup(rec.Year + 1)
			if !ok {
				return NepaliDate{}, ErrUnsupportedYear
			}
			return c.walkForward(next, offset, overflow+1)
		}
	}
	return NepaliDate{Year: rec.Year, Month: month, Day: day}, nil
}

// walkBackward moves offset days back from the last day of Chaitra of rec.
func walkBackward(rec YearRecord, offset int) (NepaliDate, error) {
	month := MonthsPerYear
	day := rec.DaysInMonth[month-1]
	for offset > 0 {
		if day > offset {
			day -= offset
			break
		}
		offset -= day
		month--
		if month < 1 {
			return NepaliDate{}, ErrTraversalUnderflow
		}
		day = rec.DaysInMonth[month-1]
	}
	return NepaliDate{Year: rec.Year, Month: month, Day: day}, nil
}

// ToGregorian converts a BS date to midnight UTC of its Gregorian date.
// Months and days that do not exist in the year are rejected rather than
// rolled over into the following month.
func (c *Converter) ToGregorian(d NepaliDate) (time.Time, error) {
	civil, err := c.ToCivil(d)
	if err != nil {
		return time.Time{}, err
	}
	return civil.Time(), nil
}

// ToCivil is ToGregorian without the time-of-day representation.
func (c *Converter) ToCivil(d NepaliDate) (CivilDate, error) {
	rec, ok := c.table.Lookup(d.Year)
	if !ok {
		return CivilDate{}, ErrUnsupportedYear
	}
	if !c.table.Valid(d) {
		return CivilDate{}, ErrInvalidDate
	}

	offset := d.Day - 1
	for m := 1; m < d.Month; m++ {
		offset += rec.DaysInMonth[m-1]
	}
	return rec.Anchor.AddDays(offset), nil
}

// AddDays returns the BS date n days after d.
func (c *Converter) AddDays(d NepaliDate, n int) (NepaliDate, error) {
	civil, err := c.ToCivil(d)
	if err != nil {
		return NepaliDate{}, err
	}
	return c.fromCivil(civil.AddDays(n))
}

// AddMonths moves d by n months, carrying into adjacent years. The day is
// clamped to the length of the resulting month.
func (c *Converter) AddMonths(d NepaliDate, n int) (NepaliDate, error) {
	if d.Month < 1 || d.Month > MonthsPerYear {
		return NepaliDate{}, ErrInvalidDate
	}
	idx := d.Year*MonthsPerYear + d.Month - 1 + n
	year, month := floorDiv(idx, MonthsPerYear), idx%MonthsPerYear
	if month < 0 {
		month += MonthsPerYear
	}
	month++

	length, ok := c.table.DaysInMonth(year, month)
	if !ok {
		return NepaliDate{}, ErrUnsupportedYear
	}
	return NepaliDate{Year: year, Month: month, Day: min(max(d.Day, 1), length)}, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
