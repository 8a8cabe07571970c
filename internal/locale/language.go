// Package locale resolves the script-dependent parts of a BS date: digits,
// month names and weekday names in Nepali (Devanagari) or English.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language selects numerals and month names.
type Language int

const (
	Nepali Language = iota
	English
)

// ErrUnknownLanguage is returned by ParseLanguage.
var ErrUnknownLanguage = errors.New("locale: unknown language")

var (
	tagNepali  = language.Nepali
	tagEnglish = language.English

	matcher = language.NewMatcher([]language.Tag{tagNepali, tagEnglish})
)

// Languages lists the supported languages in menu order.
func Languages() []Language {
	return []Language{Nepali, English}
}

// ParseLanguage accepts the display names used in settings ("Nepali",
// "English", "नेपाली") and BCP 47 tags such as "ne", "ne-NP" or "en-GB".
func ParseLanguage(s string) (Language, error) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "nepali", "नेपाली":
		return Nepali, nil
	case "english":
		return English, nil
	}

	tag, err := language.Parse(trimmed)
	if err != nil {
		return Nepali, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Nepali, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	if idx == 0 {
		return Nepali, nil
	}
	return English, nil
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if l == English {
		return tagEnglish
	}
	return tagNepali
}

// Code is the short tag ("ne" or "en") used for preferences and locale files.
func (l Language) Code() string {
	return l.Tag().String()
}

// String returns the settings name of the language.
func (l Language) String() string {
	if l == English {
		return "English"
	}
	return "Nepali"
}

// DisplayName returns the language name in its own script.
func (l Language) DisplayName() string {
	if l == English {
		return "English"
	}
	return "नेपाली"
}

// MarshalText implements encoding.TextMarshaler for config files.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for config files.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
