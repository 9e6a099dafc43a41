package readmetrics

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// WordTokenizer splits text into words, separating leading and trailing
// punctuation and contractions from the words they are attached to.
//
// For example, `"Don't stop," he said.` becomes
// [" Do n't stop , " he said .].
type WordTokenizer struct {
	specialRE  *regexp.Regexp
	sanitizer  *strings.Replacer
	splitCases []string
	suffixes   []string
	prefixes   []string
}

// TokenizerOpt changes a WordTokenizer's splitting rules.
type TokenizerOpt func(*WordTokenizer)

// UsingSpecialRE sets the regex for tokens that are never split, such as
// abbreviations.
func UsingSpecialRE(x *regexp.Regexp) TokenizerOpt {
	return func(t *WordTokenizer) {
		t.specialRE = x
	}
}

// UsingSuffixes sets the single-byte suffixes split off the end of a token.
func UsingSuffixes(x []string) TokenizerOpt {
	return func(t *WordTokenizer) {
		t.suffixes = x
	}
}

// UsingPrefixes sets the single-byte prefixes split off the front of a token.
func UsingPrefixes(x []string) TokenizerOpt {
	return func(t *WordTokenizer) {
		t.prefixes = x
	}
}

// UsingContractions sets the contraction endings split into their own token.
func UsingContractions(x []string) TokenizerOpt {
	return func(t *WordTokenizer) {
		t.splitCases = x
	}
}

// NewWordTokenizer returns a tokenizer with English defaults.
func NewWordTokenizer(opts ...TokenizerOpt) *WordTokenizer {
	t := &WordTokenizer{
		specialRE:  internalRE,
		sanitizer:  sanitizer,
		splitCases: contractions,
		suffixes:   suffixes,
		prefixes:   prefixes,
	}
	for _, applyOpt := range opts {
		applyOpt(t)
	}
	return t
}

// Tokenize splits text into a slice of words and punctuation symbols.
func (t *WordTokenizer) Tokenize(text string) []string {
	var tokens []string
	cache := map[string][]string{}

	for _, span := range strings.Fields(t.sanitizer.Replace(text)) {
		toks, found := cache[span]
		if !found {
			toks = t.split(span)
			cache[span] = toks
		}
		tokens = append(tokens, toks...)
	}
	return tokens
}

func (t *WordTokenizer) split(token string) []string {
	var tokens, suffs []string

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.specialRE.MatchString(token) {
			tokens = append(tokens, token)
			break
		}
		last = utf8.RuneCountInString(token)
		lower := strings.ToLower(token)
		if hasAnyPrefix(token, t.prefixes) {
			// $100 -> [$, 100].
			tokens = append(tokens, token[:1])
			token = token[1:]
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > 0 {
			// they'll -> [they, 'll], don't -> [do, n't].
			tokens = append(tokens, token[:idx])
			token = token[idx:]
		} else if hasAnySuffix(token, t.suffixes) {
			// Well) -> [Well, )].
			suffs = append([]string{token[len(token)-1:]}, suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = append(tokens, token)
			break
		}
	}

	return append(tokens, suffs...)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// hasAnyIndex returns the position of the first split case found strictly
// inside s, or -1.
func hasAnyIndex(s string, cases []string) int {
	for _, c := range cases {
		if idx := strings.Index(s, c); idx > 0 {
			return idx
		}
	}
	return -1
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$`)
var sanitizer = strings.NewReplacer(
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2018", "'",
	"\u2019", "'",
	"&rsquo;", "'")
var contractions = []string{"'ll", "'s", "'re", "'m", "'ve", "'d", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}
