// Package readmetrics scores article text for sentiment and readability.
package readmetrics

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text string // The sentence's text.
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// ArticleRecord is one input row together with the fetched article.
//
// Title and Body are empty when the fetch failed.
type ArticleRecord struct {
	ID    string
	URL   string
	Title string
	Body  string
}

// InputRow is a single {URL_ID, URL} pair read from the input table.
type InputRow struct {
	ID  string
	URL string
}

// MetricsRow holds every metric computed for one input row.
type MetricsRow struct {
	ID                   string
	URL                  string
	PositiveScore        int
	NegativeScore        int
	PolarityScore        float64
	SubjectivityScore    float64
	AvgSentenceLength    float64
	PctComplexWords      float64
	FogIndex             float64
	AvgWordLength        float64
	PersonalPronounCount int
}

// ZeroMetrics returns the row emitted when no usable article text exists.
func ZeroMetrics(row InputRow) MetricsRow {
	return MetricsRow{ID: row.ID, URL: row.URL}
}

// IsZero reports whether every metric of r is zero.
func (r MetricsRow) IsZero() bool {
	return r == MetricsRow{ID: r.ID, URL: r.URL}
}

// Columns is the fixed order of the output table.
var Columns = []string{
	"URL_ID",
	"URL",
	"POSITIVE SCORE",
	"NEGATIVE SCORE",
	"POLARITY SCORE",
	"SUBJECTIVITY SCORE",
	"AVG SENTENCE LENGTH",
	"PERCENTAGE OF COMPLEX WORDS",
	"FOG INDEX",
	"AVG WORD LENGTH",
	"PERSONAL PRONOUNS COUNT",
}

// Values returns r's fields in Columns order.
func (r MetricsRow) Values() []interface{} {
	return []interface{}{
		r.ID,
		r.URL,
		r.PositiveScore,
		r.NegativeScore,
		r.PolarityScore,
		r.SubjectivityScore,
		r.AvgSentenceLength,
		r.PctComplexWords,
		r.FogIndex,
		r.AvgWordLength,
		r.PersonalPronounCount,
	}
}
