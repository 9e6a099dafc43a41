package readmetrics

import (
	"regexp"
	"unicode/utf8"
)

// Readability holds the readability metrics of a text.
type Readability struct {
	Sentences            int
	Words                int
	ComplexWords         int
	AvgSentenceLength    float64
	PctComplexWords      float64
	FogIndex             float64
	AvgWordLength        float64
	PersonalPronounCount int
}

// Case-insensitive, so the country "US" also counts as "us".
var personalPronounRE = regexp.MustCompile(`(?i)\b(?:I|we|my|ours|us)\b`)

// ReadabilityAnalyzer computes sentence, word and Fog Index statistics.
type ReadabilityAnalyzer struct {
	segmenter *SentenceSegmenter
	tokenizer *WordTokenizer
}

// NewReadabilityAnalyzer creates an analyzer using the English sentence
// model and the default word tokenizer.
func NewReadabilityAnalyzer() (*ReadabilityAnalyzer, error) {
	segmenter, err := NewSentenceSegmenter()
	if err != nil {
		return nil, err
	}
	return &ReadabilityAnalyzer{segmenter: segmenter, tokenizer: NewWordTokenizer()}, nil
}

// Analyze computes the metrics of raw, unfiltered text.
func (ra *ReadabilityAnalyzer) Analyze(text string) Readability {
	var r Readability

	r.Sentences = len(ra.segmenter.Segment(text))
	r.Words = CountWords(text)
	if r.Sentences > 0 {
		r.AvgSentenceLength = float64(r.Words) / float64(r.Sentences)
	}

	// Word lengths and complex words come from the punctuation-aware
	// tokens, while the divisor stays the whitespace word count.
	chars := 0
	for _, tok := range ra.tokenizer.Tokenize(text) {
		chars += utf8.RuneCountInString(tok)
		if IsComplexWord(tok) {
			r.ComplexWords++
		}
	}
	if r.Words > 0 {
		r.PctComplexWords = 100 * float64(r.ComplexWords) / float64(r.Words)
		r.AvgWordLength = float64(chars) / float64(r.Words)
	}

	r.FogIndex = 0.4 * (r.AvgSentenceLength + r.PctComplexWords)
	r.PersonalPronounCount = CountPersonalPronouns(text)
	return r
}

// CountPersonalPronouns counts whole-word, case-insensitive occurrences of
// I, we, my, ours and us.
func CountPersonalPronouns(text string) int {
	return len(personalPronounRE.FindAllStringIndex(text, -1))
}
