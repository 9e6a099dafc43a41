package readmetrics

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// BatchSummary describes a finished batch.
type BatchSummary struct {
	Rows      int
	Populated int // Rows with at least one non-zero metric.
	Zeroed    int

	PolarityMean, PolarityStdDev         float64
	SubjectivityMean, SubjectivityStdDev float64
	FogIndexMean, FogIndexStdDev         float64
}

// Summarize aggregates the populated rows of a batch. Means and standard
// deviations are zero when fewer than one (mean) or two (stddev) rows are
// populated.
func Summarize(rows []MetricsRow) BatchSummary {
	s := BatchSummary{Rows: len(rows)}

	var polarity, subjectivity, fog []float64
	for _, r := range rows {
		if r.IsZero() {
			s.Zeroed++
			continue
		}
		s.Populated++
		polarity = append(polarity, r.PolarityScore)
		subjectivity = append(subjectivity, r.SubjectivityScore)
		fog = append(fog, r.FogIndex)
	}

	s.PolarityMean, s.PolarityStdDev = meanStdDev(polarity)
	s.SubjectivityMean, s.SubjectivityStdDev = meanStdDev(subjectivity)
	s.FogIndexMean, s.FogIndexStdDev = meanStdDev(fog)
	return s
}

func meanStdDev(x []float64) (float64, float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}

// LogValue implements slog.LogValuer.
func (s BatchSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rows", s.Rows),
		slog.Int("populated", s.Populated),
		slog.Int("zeroed", s.Zeroed),
		slog.Float64("polarity_mean", s.PolarityMean),
		slog.Float64("polarity_stddev", s.PolarityStdDev),
		slog.Float64("subjectivity_mean", s.SubjectivityMean),
		slog.Float64("subjectivity_stddev", s.SubjectivityStdDev),
		slog.Float64("fog_index_mean", s.FogIndexMean),
		slog.Float64("fog_index_stddev", s.FogIndexStdDev),
	)
}
