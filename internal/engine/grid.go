package engine

import (
	"time"

	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/config"
)

// DayCell is one slot of the month window. Padding cells have a nil Nepali
// date and a zero Gregorian time.
type DayCell struct {
	Nepali    *bikram.NepaliDate
	Gregorian time.Time
	InMonth   bool
	Today     bool
}

// IsBlank reports whether the cell is padding.
func (c DayCell) IsBlank() bool {
	return c.Nepali == nil
}

// MonthGrid lays out the BS month containing d as six Sunday-first weeks.
// Leading blanks match the weekday of day 1; trailing blanks fill the grid.
// The cell matching clock's current date, if any, is marked Today.
func MonthGrid(conv *bikram.Converter, d bikram.NepaliDate, clock bikram.Clock) ([]DayCell, error) {
	first := d.FirstOfMonth()
	firstCivil, err := conv.ToCivil(first)
	if err != nil {
		return nil, err
	}
	days, _ := conv.Table().DaysInMonth(first.Year, first.Month)

	today, todayErr := conv.Today(clock)

	grid := make([]DayCell, 0, config.GridTotalCells)
	for range int(firstCivil.Time().Weekday()) {
		grid = append(grid, DayCell{})
	}
	for day := 1; day <= days; day++ {
		nd := bikram.Date(first.Year, first.Month, day)
		grid = append(grid, DayCell{
			Nepali:    &nd,
			Gregorian: firstCivil.AddDays(day - 1).Time(),
			InMonth:   true,
			Today:     todayErr == nil && nd == today,
		})
	}
	for len(grid) < config.GridTotalCells {
		grid = append(grid, DayCell{})
	}
	return grid, nil
}
