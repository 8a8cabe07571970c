package engine

import (
	"time"

	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/config"
	"github.com/tartampluch/go-nepalidate/internal/dateformat"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

// Snapshot is the rendered state of one day, shared by the tray and the
// /today endpoint. It decouples both surfaces from the converter.
type Snapshot struct {
	// Nepali is the converted date. Zero when Supported is false.
	Nepali bikram.NepaliDate `json:"-"`

	// BS is the Latin YYYY/MM/DD form, stable across languages.
	BS string `json:"bs,omitempty"`

	// Gregorian is the civil date that was converted, as YYYY-MM-DD.
	Gregorian string `json:"gregorian"`

	// Title is the date rendered with the user's pattern, or the placeholder.
	Title string `json:"title"`

	// Tooltip is the long form with the BS suffix, or the placeholder.
	Tooltip string `json:"tooltip"`

	Weekday   string `json:"weekday"`
	MonthName string `json:"month_name,omitempty"`
	Language  string `json:"language"`
	Supported bool   `json:"supported"`
}

// TakeSnapshot renders the civil date of now. When the date is outside the
// table the placeholder snapshot is returned together with the error.
func TakeSnapshot(conv *bikram.Converter, now time.Time, lang locale.Language, pattern string) (Snapshot, error) {
	s := Snapshot{
		Gregorian: now.Format(config.DateFormatGregorian),
		Weekday:   locale.WeekdayName(now.Weekday(), lang, false),
		Language:  lang.Code(),
		Title:     dateformat.Placeholder,
		Tooltip:   dateformat.Placeholder,
	}

	nd, err := conv.ToNepaliTime(now)
	if err != nil {
		return s, err
	}

	s.Nepali = nd
	s.BS = nd.String()
	s.Title = dateformat.Format(nd, pattern, lang)
	s.Tooltip = dateformat.Tooltip(nd, lang)
	s.MonthName = locale.MonthName(nd.Month, lang)
	s.Supported = true
	return s, nil
}
