package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/config"
	"github.com/teambition/rrule-go"
)

// Day pairs a Gregorian calendar day with its BS date.
// Supported is false when the day lies outside the calendar table.
type Day struct {
	Gregorian time.Time
	Nepali    bikram.NepaliDate
	Supported bool
}

// DaysBetween enumerates n consecutive calendar days starting with the civil
// date of start. Each returned time is midnight UTC of that civil date, so
// the sequence is immune to DST shifts in start's location.
func DaysBetween(start time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Count:   n,
		Dtstart: bikram.CivilOf(start).Time(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDayRule, err)
	}
	return rule.All(), nil
}

// Agenda lists n days from start with their BS dates. Days the converter
// cannot map are kept with Supported false so the caller can render a gap.
func Agenda(conv *bikram.Converter, start time.Time, n int) ([]Day, error) {
	days, err := DaysBetween(start, n)
	if err != nil {
		return nil, err
	}

	out := make([]Day, 0, len(days))
	for _, g := range days {
		nd, err := conv.ToNepaliTime(g)
		out = append(out, Day{Gregorian: g, Nepali: nd, Supported: err == nil})
	}
	return out, nil
}
