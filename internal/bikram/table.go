package bikram

import (
	"fmt"
	"sync"
)

const (
	// MonthsPerYear is the number of BS months.
	MonthsPerYear = 12

	minMonthLength = 29
	maxMonthLength = 32
)

// YearRecord describes one Bikram Sambat year: the Gregorian date of
// 1 Baisakh and the length of each of its twelve months.
type YearRecord struct {
	Year        int
	Anchor      CivilDate
	DaysInMonth [MonthsPerYear]int
}

// Length returns the number of days in the year.
func (r YearRecord) Length() int {
	total := 0
	for _, n := range r.DaysInMonth {
		total += n
	}
	return total
}

// Table is an immutable, contiguous range of YearRecords.
// It is safe for concurrent use once constructed.
type Table struct {
	minYear int
	records []YearRecord
}

// NewTable validates records and builds a Table from a copy of them.
// Records must be sorted, contiguous and internally consistent: each year
// must end exactly one day before the anchor of the following year.
func NewTable(records []YearRecord) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	owned := make([]YearRecord, len(records))
	copy(owned, records)

	for i, r := range owned {
		if r.Year != owned[0].Year+i {
			return nil, fmt.Errorf("%w: year %d at position %d", ErrInvalidTable, r.Year, i)
		}
		for m, n := range r.DaysInMonth {
			if n < minMonthLength || n > maxMonthLength {
				return nil, fmt.Errorf("%w: year %d month %d has %d days", ErrInvalidTable, r.Year, m+1, n)
			}
		}
		if i == 0 {
			continue
		}
		prev := owned[i-1]
		if gap := prev.Anchor.DaysUntil(r.Anchor); gap != prev.Length() {
			return nil, fmt.Errorf("%w: year %d spans %d days but next anchor is %d days away",
				ErrInvalidTable, prev.Year, prev.Length(), gap)
		}
	}

	return &Table{minYear: owned[0].Year, records: owned}, nil
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := NewTable(defaultRecords)
	if err != nil {
		panic(fmt.Sprintf("bikram: compiled-in calendar table is inconsistent: %v", err))
	}
	return t
})

// DefaultTable returns the compiled-in BS 2000-2090 table.
// It is built on first use and shared afterwards.
func DefaultTable() *Table {
	return defaultTable()
}

// Lookup returns the record of a BS year. The boolean is false when the
// year lies outside the table.
func (t *Table) Lookup(year int) (YearRecord, bool) {
	i := year - t.minYear
	if i < 0 || i >= len(t.records) {
		return YearRecord{}, false
	}
	return t.records[i], true
}

// MinYear is the first supported BS year.
func (t *Table) MinYear() int { return t.minYear }

// MaxYear is the last supported BS year.
func (t *Table) MaxYear() int { return t.minYear + len(t.records) - 1 }

// DaysInMonth returns the length of a BS month.
func (t *Table) DaysInMonth(year, month int) (int, bool) {
	r, ok := t.Lookup(year)
	if !ok || month < 1 || month > MonthsPerYear {
		return 0, false
	}
	return r.DaysInMonth[month-1], true
}

// DaysInYear returns the length of a BS year.
func (t *Table) DaysInYear(year int) (int, bool) {
	r, ok := t.Lookup(year)
	if !ok {
		return 0, false
	}
	return r.Length(), true
}

// Valid reports whether d names an existing day in the table.
func (t *Table) Valid(d NepaliDate) bool {
	n, ok := t.DaysInMonth(d.Year, d.Month)
	return ok && d.Day >= 1 && d.Day <= n
}
