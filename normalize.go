package readmetrics

import (
	"strings"
	"unicode"
)

// StripStopwords removes every whitespace-separated token whose lowercase
// form is in stop and joins the rest with single spaces. Kept tokens retain
// their original case.
func StripStopwords(text string, stop StopSet) string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if stop == nil || !stop.Contains(strings.ToLower(f)) {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// CountWords counts the whitespace-separated tokens of text that contain at
// least one letter, digit or underscore. Pure punctuation is not a word.
func CountWords(text string) int {
	n := 0
	for _, f := range strings.Fields(text) {
		if strings.IndexFunc(f, isWordRune) >= 0 {
			n++
		}
	}
	return n
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
