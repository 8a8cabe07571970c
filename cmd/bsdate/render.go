package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/config"
	"github.com/tartampluch/go-nepalidate/internal/dateformat"
	"github.com/tartampluch/go-nepalidate/internal/engine"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

const (
	cellWidth   = 3
	todayMarker = "*"
	gapMarker   = "-"
)

// printer renders dates for the terminal in one language and pattern.
type printer struct {
	out     io.Writer
	conv    *bikram.Converter
	clock   bikram.Clock
	lang    locale.Language
	pattern string
}

// month prints the BS month containing d as a Sunday-first grid. Today's
// cell carries a trailing marker and rows that are entirely padding are
// omitted.
func (p printer) month(d bikram.NepaliDate) error {
	cells, err := engine.MonthGrid(p.conv, d, p.clock)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "%s %s\n", locale.MonthName(d.Month, p.lang), locale.Int(d.Year, p.lang))

	var b strings.Builder
	for _, h := range locale.WeekdayHeaders(p.lang, true) {
		fmt.Fprintf(&b, "%*s ", cellWidth, h)
	}
	fmt.Fprintln(p.out, strings.TrimRight(b.String(), " "))

	for row := 0; row < len(cells); row += config.GridDaysPerWeek {
		week := cells[row : row+config.GridDaysPerWeek]
		if allBlank(week) {
			continue
		}
		b.Reset()
		for _, c := range week {
			text, mark := "", " "
			if !c.IsBlank() {
				text = locale.Int(c.Nepali.Day, p.lang)
			}
			if c.Today {
				mark = todayMarker
			}
			fmt.Fprintf(&b, "%*s%s", cellWidth, text, mark)
		}
		fmt.Fprintln(p.out, strings.TrimRight(b.String(), " "))
	}
	return nil
}

// agenda prints n days from start, one per line: the Gregorian day and its
// BS date in the active pattern. Days outside the table show a gap marker.
func (p printer) agenda(start time.Time, n int) error {
	days, err := engine.Agenda(p.conv, start, n)
	if err != nil {
		return err
	}
	for _, d := range days {
		bs := gapMarker
		if d.Supported {
			bs = dateformat.Format(d.Nepali, p.pattern, p.lang)
		}
		fmt.Fprintf(p.out, "%s  %s\n", d.Gregorian.Format(config.DateFormatDisplay), bs)
	}
	return nil
}

func allBlank(cells []engine.DayCell) bool {
	for _, c := range cells {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}
