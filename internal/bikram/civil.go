package bikram

import (
	"fmt"
	"time"
)

const hoursPerDay = 24

// CivilDate is a Gregorian calendar date without a time of day or zone.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// CivilOf returns the calendar date of t as observed in t's own location.
// Midnight in Kathmandu belongs to the Kathmandu date, not the UTC one.
func CivilOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date. time.Date normalizes overflowing days.
func (c CivilDate) Time() time.Time {
	return time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, time.UTC)
}

// In returns midnight of the date in loc.
func (c CivilDate) In(loc *time.Location) time.Time {
	return time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, loc)
}

// DaysUntil returns the signed number of days from c to other.
func (c CivilDate) DaysUntil(other CivilDate) int {
	return int(other.Time().Sub(c.Time()).Hours() / hoursPerDay)
}

// AddDays returns the date n days after c (n may be negative).
func (c CivilDate) AddDays(n int) CivilDate {
	return CivilOf(c.Time().AddDate(0, 0, n))
}

// String renders the date as YYYY-MM-DD.
func (c CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, int(c.Month), c.Day)
}
