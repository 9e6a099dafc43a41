package readmetrics

import (
	"regexp"
	"strings"
	"unicode"
)

// Adjacent vowels that a vowel-group count merges but that are spoken as two
// syllables (radio, video, medium, experience, being).
var splitVowels = []*regexp.Regexp{
	regexp.MustCompile(`[^cgst]ia([^r]|$)`),
	regexp.MustCompile(`[^cgstx]io([^n]|$)`),
	regexp.MustCompile(`eo([^pnu]|$)`),
	regexp.MustCompile(`[^gq]ua`),
	regexp.MustCompile(`iu`),
	regexp.MustCompile(`[bdf-hj-np-rv-z]ie[nt]|uie[nt]|scien`),
	regexp.MustCompile(`[^gq]uen`),
	regexp.MustCompile(`oe[mt]`),
	regexp.MustCompile(`creat`),
	regexp.MustCompile(`[aeiouy]ing$`),
	regexp.MustCompile(`[aeiouy][b-df-hj-np-tv-z]ea$`),
}

// Exceptions to splitVowels (senior, behavior, friend).
var mergedVowels = []*regexp.Regexp{
	regexp.MustCompile(`[nv]ior`),
	regexp.MustCompile(`frien`),
}

// CountSyllables estimates the number of syllables in an English word by
// counting maximal vowel groups after dropping silent endings, then
// correcting for vowel pairs that span two syllables.
//
// Non-letters are ignored; a word with no letters has zero syllables and any
// other word has at least one.
func CountSyllables(word string) int {
	w := lettersOnly(word)
	if w == "" {
		return 0
	}
	if len(w) <= 3 {
		return 1
	}

	count := vowelGroups(strings.TrimPrefix(trimSilentEnding(w), "y"))
	for _, re := range splitVowels {
		count += len(re.FindAllStringIndex(w, -1))
	}
	for _, re := range mergedVowels {
		count -= len(re.FindAllStringIndex(w, -1))
	}
	if count < 1 {
		return 1
	}
	return count
}

// IsComplexWord reports whether word has more than two syllables.
func IsComplexWord(word string) bool {
	return CountSyllables(word) > 2
}

// vowelGroups counts maximal runs of vowels. A leading y must already be
// stripped, since it is a consonant (yellow, young).
func vowelGroups(w string) int {
	count := 0
	inGroup := false
	for _, r := range w {
		if isVowel(r) {
			if !inGroup {
				count++
			}
			inGroup = true
		} else {
			inGroup = false
		}
	}
	return count
}

func trimSilentEnding(w string) string {
	n := len(w)
	switch {
	case strings.HasSuffix(w, "ed"):
		// wanted, needed keep the syllable.
		if c := w[n-3]; c != 't' && c != 'd' {
			return w[:n-2]
		}
	case strings.HasSuffix(w, "es"):
		// boxes, wishes, places keep the syllable.
		if c := w[n-3]; !strings.ContainsRune("sxzhcg", rune(c)) && !isVowel(rune(c)) {
			return w[:n-2]
		}
	case strings.HasSuffix(w, "le"):
		// table, syllable keep the syllable; whale does not.
		if isVowel(rune(w[n-3])) {
			return w[:n-1]
		}
	case strings.HasSuffix(w, "e"):
		if !isVowel(rune(w[n-2])) {
			return w[:n-1]
		}
	}
	return w
}

func lettersOnly(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
