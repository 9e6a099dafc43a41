package readmetrics

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// A Fetcher retrieves the title and body text of the article at url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (title, text string, err error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (string, string, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, url string) (string, string, error) {
	return f(ctx, url)
}

// A PipelineOpt represents a setting that changes how a Pipeline runs.
type PipelineOpt func(*Pipeline)

// WithLogger sets the logger for progress and per-row diagnostics.
func WithLogger(logger *slog.Logger) PipelineOpt {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithExtraStopwords drops words in s in addition to the stop lexicon.
func WithExtraStopwords(s StopSet) PipelineOpt {
	return func(p *Pipeline) {
		p.stop = UnionStopSet(p.stop, s)
	}
}

// WithFetchTimeout bounds each fetch. Zero disables the bound.
func WithFetchTimeout(d time.Duration) PipelineOpt {
	return func(p *Pipeline) {
		p.fetchTimeout = d
	}
}

// WithProgressCallback is called after each row with the number of rows done.
func WithProgressCallback(callback func(done, total int)) PipelineOpt {
	return func(p *Pipeline) {
		p.progress = callback
	}
}

// Pipeline turns input rows into metrics rows: fetch, strip stop words,
// score, analyze readability.
type Pipeline struct {
	fetcher      Fetcher
	stop         StopSet
	scorer       *Scorer
	analyzer     *ReadabilityAnalyzer
	logger       *slog.Logger
	fetchTimeout time.Duration
	progress     func(done, total int)
}

// NewPipeline creates a Pipeline over lexicons loaded once up front.
//
// For example,
//
//	lex := readmetrics.NewLoader().LoadAll(paths)
//	p, err := readmetrics.NewPipeline(fetcher, lex)
func NewPipeline(fetcher Fetcher, lex Lexicons, opts ...PipelineOpt) (*Pipeline, error) {
	analyzer, err := NewReadabilityAnalyzer()
	if err != nil {
		return nil, err
	}
	p := &Pipeline{
		fetcher:      fetcher,
		stop:         lex.Stop,
		scorer:       NewScorer(lex.Positive, lex.Negative),
		analyzer:     analyzer,
		logger:       slog.Default(),
		fetchTimeout: 30 * time.Second,
	}
	for _, applyOpt := range opts {
		applyOpt(p)
	}
	return p, nil
}

// Analyze computes the metrics of an already fetched article. An article
// without both a title and body text yields a zeroed row.
func (p *Pipeline) Analyze(rec ArticleRecord) MetricsRow {
	row := MetricsRow{ID: rec.ID, URL: rec.URL}
	if rec.Title == "" || rec.Body == "" {
		return row
	}

	sentiment := p.scorer.Score(StripStopwords(rec.Body, p.stop))
	readability := p.analyzer.Analyze(rec.Body)

	row.PositiveScore = sentiment.Positive
	row.NegativeScore = sentiment.Negative
	row.PolarityScore = sentiment.Polarity
	row.SubjectivityScore = sentiment.Subjectivity
	row.AvgSentenceLength = readability.AvgSentenceLength
	row.PctComplexWords = readability.PctComplexWords
	row.FogIndex = readability.FogIndex
	row.AvgWordLength = readability.AvgWordLength
	row.PersonalPronounCount = readability.PersonalPronounCount
	return row
}

// Fetch retrieves the article for row. Failures are logged and leave the
// title and body empty.
func (p *Pipeline) Fetch(ctx context.Context, row InputRow) ArticleRecord {
	rec := ArticleRecord{ID: row.ID, URL: row.URL}
	if strings.TrimSpace(row.URL) == "" {
		p.logger.Warn("row has no url", "url_id", row.ID)
		return rec
	}

	if p.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.fetchTimeout)
		defer cancel()
	}

	title, text, err := p.fetcher.Fetch(ctx, row.URL)
	if err != nil {
		p.logger.Warn("fetch failed", "url_id", row.ID, "url", row.URL, "error", err)
		return rec
	}
	rec.Title, rec.Body = strings.TrimSpace(title), strings.TrimSpace(text)
	return rec
}

// Run processes rows in order and returns exactly one metrics row per input
// row. If ctx is cancelled, the remaining rows are zeroed and ctx.Err() is
// returned alongside the complete result.
func (p *Pipeline) Run(ctx context.Context, rows []InputRow) ([]MetricsRow, error) {
	out := make([]MetricsRow, 0, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("batch cancelled", "processed", i, "total", len(rows), "error", err)
			for _, rest := range rows[i:] {
				out = append(out, ZeroMetrics(rest))
			}
			return out, err
		}

		rec := p.Fetch(ctx, row)
		m := p.Analyze(rec)
		out = append(out, m)

		if m.IsZero() {
			p.logger.Info("no usable article text", "url_id", row.ID, "url", row.URL)
		} else {
			p.logger.Info("processed article",
				"url_id", m.ID,
				"url", m.URL,
				"title", rec.Title,
				"positive", m.PositiveScore,
				"negative", m.NegativeScore,
				"polarity", m.PolarityScore,
				"subjectivity", m.SubjectivityScore,
				"fog_index", m.FogIndex,
			)
		}
		if p.progress != nil {
			p.progress(i+1, len(rows))
		}
	}
	return out, nil
}
