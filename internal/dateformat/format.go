// Package dateformat renders BS dates from token patterns.
//
// Recognized tokens, matched longest first at each position:
//
//	YYYY  year
//	MMMM  month name
//	MM    zero-padded month
//	DD    zero-padded day
//	D     day
//
// Every other character is copied verbatim. Text between single quotes is
// never interpreted ('D' prints a literal D) and '' prints one quote.
package dateformat

import (
	"strings"

	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

const quote = '\''

type token struct {
	text   string
	render func(d bikram.NepaliDate, lang locale.Language) string
}

// tokens is ordered longest first so MMMM wins over MM and DD over D.
var tokens = []token{
	{"YYYY", func(d bikram.NepaliDate, lang locale.Language) string { return locale.Int(d.Year, lang) }},
	{"MMMM", func(d bikram.NepaliDate, lang locale.Language) string { return locale.MonthName(d.Month, lang) }},
	{"MM", func(d bikram.NepaliDate, lang locale.Language) string { return locale.Padded(d.Month, 2, lang) }},
	{"DD", func(d bikram.NepaliDate, lang locale.Language) string { return locale.Padded(d.Day, 2, lang) }},
	{"D", func(d bikram.NepaliDate, lang locale.Language) string { return locale.Int(d.Day, lang) }},
}

// Format renders d using pattern in the numerals and month names of lang.
// Substituted text is never scanned again.
func Format(d bikram.NepaliDate, pattern string, lang locale.Language) string {
	var b strings.Builder
	b.Grow(len(pattern) * 2)

	for i := 0; i < len(pattern); {
		if pattern[i] == quote {
			i = copyQuoted(&b, pattern, i+1)
			continue
		}
		if tok, ok := matchToken(pattern[i:]); ok {
			b.WriteString(tok.render(d, lang))
			i += len(tok.text)
			continue
		}
		b.WriteByte(pattern[i])
		i++
	}
	return b.String()
}

func matchToken(s string) (token, bool) {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok.text) {
			return tok, true
		}
	}
	return token{}, false
}

// copyQuoted writes the literal starting at pattern[start] up to the closing
// quote and returns the index after it. An unterminated literal runs to the
// end of the pattern.
func copyQuoted(b *strings.Builder, pattern string, start int) int {
	if start < len(pattern) && pattern[start] == quote {
		b.WriteByte(quote)
		return start + 1
	}
	i := start
	for i < len(pattern) {
		if pattern[i] != quote {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		if i+1 < len(pattern) && pattern[i+1] == quote {
			b.WriteByte(quote)
			i += 2
			continue
		}
		return i + 1
	}
	return i
}
