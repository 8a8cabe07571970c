package bikram

import "fmt"

// NepaliDate is a day in the Bikram Sambat calendar.
// Whether it exists depends on the table it is checked against (see Table.Valid).
type NepaliDate struct {
	Year  int
	Month int
	Day   int
}

// Date is a shorthand constructor.
func Date(year, month, day int) NepaliDate {
	return NepaliDate{Year: year, Month: month, Day: day}
}

// String renders the date as YYYY/MM/DD with Latin digits.
func (d NepaliDate) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d NepaliDate) Compare(o NepaliDate) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is strictly before o.
func (d NepaliDate) Before(o NepaliDate) bool { return d.Compare(o) < 0 }

// FirstOfMonth returns day 1 of d's month.
func (d NepaliDate) FirstOfMonth() NepaliDate {
	return NepaliDate{Year: d.Year, Month: d.Month, Day: 1}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
