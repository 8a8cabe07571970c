package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

// NumericalEntry is an Entry that only accepts digits. Devanagari digits
// typed on a Nepali keyboard are stored as ASCII so the value parses.
type NumericalEntry struct {
	widget.Entry
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune drops anything that is not a digit.
// Pasted text bypasses this filter; the Validator covers that case.
func (e *NumericalEntry) TypedRune(r rune) {
	switch {
	case r >= '0' && r <= '9':
		e.Entry.TypedRune(r)
	case r >= '०' && r <= '९':
		e.Entry.TypedRune([]rune(locale.ToLatin(string(r)))[0])
	}
}

// Keyboard shows a numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
