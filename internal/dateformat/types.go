package dateformat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

// Type names a display preset. Custom means a user supplied pattern.
type Type string

const (
	Short    Type = "Short"
	Medium   Type = "Medium"
	Long     Type = "Long"
	MonthDay Type = "Month, Day"
	DayOnly  Type = "Day Only"
	Custom   Type = "Custom"
)

const (
	// TooltipPattern is used for the long tray tooltip.
	TooltipPattern = "MMMM DD, YYYY"
	tooltipSuffix  = " BS"

	// Placeholder is shown when today cannot be converted.
	Placeholder = "Nepali Date"
)

// ErrUnknownType is returned by ParseType.
var ErrUnknownType = errors.New("dateformat: unknown format type")

var patterns = map[Type]string{
	Short:    "YYYY/MM/DD",
	Medium:   "YYYY MMMM D",
	Long:     "MMMM D, YYYY",
	MonthDay: "MMMM, D",
	DayOnly:  "D",
}

// exampleDates are the sample dates shown next to each preset in settings.
var exampleDates = map[Type]bikram.NepaliDate{
	Short:    bikram.Date(2082, 8, 1),
	Medium:   bikram.Date(2082, 10, 1),
	Long:     bikram.Date(2082, 10, 1),
	MonthDay: bikram.Date(2082, 10, 1),
	DayOnly:  bikram.Date(2082, 10, 1),
}

// Types lists the presets in menu order.
func Types() []Type {
	return []Type{Short, Medium, Long, MonthDay, DayOnly, Custom}
}

// ParseType matches a preset name case-insensitively.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Pattern returns the preset pattern. Custom has none and yields "".
func (t Type) Pattern() string {
	return patterns[t]
}

// Example renders the preset sample for lang.
func (t Type) Example(lang locale.Language) string {
	d, ok := exampleDates[t]
	if !ok {
		return string(Custom) + "..."
	}
	return Format(d, t.Pattern(), lang)
}

// Tooltip renders the long form used as tray tooltip.
func Tooltip(d bikram.NepaliDate, lang locale.Language) string {
	return Format(d, TooltipPattern, lang) + tooltipSuffix
}
