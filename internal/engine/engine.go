package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/config"
	"github.com/tartampluch/go-nepalidate/internal/dateformat"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

// FeedWindow selects the days published around today.
type FeedWindow struct {
	PastDays   int
	FutureDays int
}

// Len is the number of days covered, today included.
func (w FeedWindow) Len() int {
	return w.PastDays + w.FutureDays + 1
}

func (w FeedWindow) validate() error {
	if w.PastDays < 0 || w.FutureDays < 0 || w.Len() > config.MaxFeedDays {
		return fmt.Errorf("%s: past=%d future=%d", config.ErrFeedRange, w.PastDays, w.FutureDays)
	}
	return nil
}

// Generator builds the BS overlay calendar: one all-day event per day whose
// title is the BS date.
type Generator struct {
	Clock     bikram.Clock      // Interface for time mocking.
	Converter *bikram.Converter // Defaults to bikram.Default().

	Language locale.Language
	// Pattern is the event title pattern. Empty means the Long preset.
	Pattern string
}

type feedStats struct{ days, events, skipped int }

// Generate returns the encoded iCalendar feed and the number of events in it.
func (g *Generator) Generate(ctx context.Context, w FeedWindow) ([]byte, int, error) {
	start := time.Now()
	if err := w.validate(); err != nil {
		return nil, 0, err
	}

	conv := g.Converter
	if conv == nil {
		conv = bikram.Default()
	}
	pattern := g.Pattern
	if pattern == "" {
		pattern = dateformat.Long.Pattern()
	}

	// Day boundaries follow the local calendar; only DTSTAMP is UTC.
	now := g.Clock.Now()
	first := bikram.CivilOf(now).AddDays(-w.PastDays)
	days, err := DaysBetween(first.Time(), w.Len())
	if err != nil {
		return nil, 0, err
	}

	cal := newCalendar()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	stats := feedStats{days: len(days)}
	for _, day := range days {
		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}

		nd, err := conv.ToNepaliTime(day)
		if err != nil {
			if !errors.Is(err, bikram.ErrUnsupportedYear) {
				return nil, 0, fmt.Errorf("%s: %w", config.ErrConvert, err)
			}
			stats.skipped++
			slog.Debug(config.MsgDaySkipped,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyGregorian, day.Format(config.DateFormatGregorian))
			continue
		}

		event := newDayEvent(nd, day, dateformat.Format(nd, pattern, g.Language))
		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
		stats.events++
	}

	// A valid empty VCALENDAR keeps clients from flagging the feed as broken.
	if stats.events == 0 {
		g.logSuccess(stats, start)
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(stats, start)
	return buf.Bytes(), stats.events, nil
}

func newCalendar() *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986 refresh hint.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)
	return cal
}

// newDayEvent creates the all-day event for one Gregorian day. The UID is
// derived from the BS date so clients update events in place on refresh.
func newDayEvent(nd bikram.NepaliDate, day time.Time, summary string) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, nd.Year, nd.Month, nd.Day, config.ICalDomain))
	event.Props.SetText(config.PropSummary, summary)
	event.Props.SetText(config.PropTransp, config.ICalTransp)
	event.Props.SetText(config.PropCategories, config.ICalCategory)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(day)
	event.Props.Set(dtStartProp)

	dtEndProp := ical.NewProp(config.PropDTEnd)
	dtEndProp.SetDate(day.AddDate(0, 0, 1))
	event.Props.Set(dtEndProp)
	return event
}

func (g *Generator) logSuccess(stats feedStats, start time.Time) {
	slog.Info(config.MsgFeedBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDays, stats.days,
		config.LogKeySkipped, stats.skipped,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
}
