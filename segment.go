package readmetrics

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// SentenceSegmenter splits text into sentences using the punkt algorithm
// trained on English, which knows common abbreviations ("Mr.", "U.S.") and
// does not break on them.
type SentenceSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSentenceSegmenter loads the English punkt model.
func NewSentenceSegmenter() (*SentenceSegmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &SentenceSegmenter{tokenizer: tokenizer}, nil
}

// Segment returns the non-blank sentences of text.
func (s *SentenceSegmenter) Segment(text string) []Sentence {
	var out []Sentence
	for _, sent := range s.tokenizer.Tokenize(text) {
		if trimmed := strings.TrimSpace(sent.Text); trimmed != "" {
			out = append(out, Sentence{Text: trimmed})
		}
	}
	return out
}
