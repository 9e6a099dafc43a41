package readmetrics

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
)

// LanguageStopwords is the builtin stop word list of a language, backed by
// the bbalet/stopwords tables.
type LanguageStopwords struct {
	langCode string
}

// NewLanguageStopwords returns the builtin list for an ISO 639-1 code.
func NewLanguageStopwords(langCode string) (*LanguageStopwords, error) {
	langCode = strings.ToLower(strings.TrimSpace(langCode))
	if !supportedStopwordLanguages[langCode] {
		return nil, fmt.Errorf("no builtin stop words for language %q", langCode)
	}
	return &LanguageStopwords{langCode: langCode}, nil
}

// Contains reports whether word is a stop word. Only purely alphabetic words
// are tested; the library strips punctuation, which would otherwise make
// tokens like "the," or "--" match.
func (ls *LanguageStopwords) Contains(word string) bool {
	if word == "" || strings.IndexFunc(word, func(r rune) bool { return !unicode.IsLetter(r) }) >= 0 {
		return false
	}
	// The library drops stop words from its input and returns the rest.
	return strings.TrimSpace(stopwords.CleanString(word, ls.langCode, false)) == ""
}

type unionStopSet []StopSet

// UnionStopSet matches a word present in any of sets. Nil sets are ignored.
func UnionStopSet(sets ...StopSet) StopSet {
	var u unionStopSet
	for _, s := range sets {
		if s != nil {
			u = append(u, s)
		}
	}
	return u
}

func (u unionStopSet) Contains(word string) bool {
	for _, s := range u {
		if s.Contains(word) {
			return true
		}
	}
	return false
}

var supportedStopwordLanguages = map[string]bool{
	"ar": true, "bg": true, "cs": true, "da": true, "de": true, "el": true,
	"en": true, "es": true, "fa": true, "fi": true, "fr": true, "hi": true,
	"hu": true, "id": true, "it": true, "ja": true, "km": true, "lv": true,
	"nl": true, "no": true, "pl": true, "pt": true, "ro": true, "ru": true,
	"sk": true, "sv": true, "th": true, "tr": true,
}
