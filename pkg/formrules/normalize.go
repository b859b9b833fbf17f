package formrules

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer reshapes an accepted raw value into its stored form.
// Normalizers are pure and idempotent.
type Normalizer func(string) string

// Identity returns s unchanged.
func Identity(s string) string { return s }

// Trim removes surrounding whitespace.
func Trim(s string) string { return strings.TrimSpace(s) }

// LowerCase lower-cases the whole string.
func LowerCase(s string) string {
	// cases.Caser keeps state, so one per call.
	return cases.Lower(language.BrazilianPortuguese).String(s)
}

// TitleCase trims s, splits it on single spaces and upper-cases the first
// rune of every word, leaving the rest of the word as typed. Empty tokens
// produced by runs of spaces are dropped, so words are rejoined with a
// single space.
func TitleCase(s string) string {
	tokens := strings.Split(strings.TrimSpace(s), " ")
	words := make([]string, 0, len(tokens))
	upper := cases.Upper(language.BrazilianPortuguese)
	for _, w := range tokens {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words = append(words, upper.String(string(r))+w[size:])
	}
	return strings.Join(words, " ")
}

// DigitsOnly removes every character outside 0-9.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// CountDigits reports how many 0-9 characters s holds.
func CountDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
