package locale

import (
	"fmt"
	"strconv"
	"strings"
)

// devanagariDigits is indexed by the Latin digit value.
var devanagariDigits = [10]rune{'०', '१', '२', '३', '४', '५', '६', '७', '८', '९'}

// Digits rewrites every Latin digit of s in the script of lang.
// Other characters, including padding and separators, pass through.
func Digits(s string, lang Language) string {
	if lang != Nepali {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(devanagariDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Int renders n in the script of lang.
func Int(n int, lang Language) string {
	return Digits(strconv.Itoa(n), lang)
}

// Padded renders n zero-padded to width, in the script of lang.
func Padded(n, width int, lang Language) string {
	return Digits(fmt.Sprintf("%0*d", width, n), lang)
}

// ToLatin rewrites Devanagari digits of s as Latin digits.
func ToLatin(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= devanagariDigits[0] && r <= devanagariDigits[9] {
			return '0' + (r - devanagariDigits[0])
		}
		return r
	}, s)
}
