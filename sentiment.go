package readmetrics

import "strings"

// Epsilon keeps the polarity and subjectivity denominators away from zero.
const Epsilon = 0.000001

// SentimentScore is the lexicon-based sentiment of a text.
type SentimentScore struct {
	Positive     int     // Words found in the positive lexicon.
	Negative     int     // Words found in the negative lexicon.
	Polarity     float64 // In (-1, 1]; 0 when no sentiment words occur.
	Subjectivity float64 // Sentiment words per word; never negative.
}

// Scorer counts positive and negative lexicon words.
type Scorer struct {
	positive *Lexicon
	negative *Lexicon
}

// NewScorer creates a Scorer over the given lexicons. Either may be nil,
// meaning empty.
func NewScorer(positive, negative *Lexicon) *Scorer {
	return &Scorer{positive: positive, negative: negative}
}

// Score scores text that has already had its stop words removed.
func (s *Scorer) Score(filtered string) SentimentScore {
	var score SentimentScore
	for _, f := range strings.Fields(filtered) {
		lower := strings.ToLower(f)
		if s.positive.Contains(lower) {
			score.Positive++
		}
		if s.negative.Contains(lower) {
			score.Negative++
		}
	}
	score.Polarity = Polarity(score.Positive, score.Negative)
	score.Subjectivity = Subjectivity(score.Positive, score.Negative, CountWords(filtered))
	return score
}

// Polarity returns (pos - neg) / (pos + neg + Epsilon), or 0 if the
// denominator is zero.
func Polarity(pos, neg int) float64 {
	denom := float64(pos+neg) + Epsilon
	if denom == 0 {
		return 0.0
	}
	return float64(pos-neg) / denom
}

// Subjectivity returns (pos + neg) / (totalWords + Epsilon), or 0 if the
// denominator is zero.
func Subjectivity(pos, neg, totalWords int) float64 {
	denom := float64(totalWords) + Epsilon
	if denom == 0 {
		return 0.0
	}
	return float64(pos+neg) / denom
}
