package readmetrics

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	rows := []MetricsRow{
		{ID: "1", URL: "a", PositiveScore: 1, PolarityScore: 1, SubjectivityScore: 0.5, FogIndex: 10},
		{ID: "2", URL: "b"},
		{ID: "3", URL: "c", NegativeScore: 1, PolarityScore: -1, SubjectivityScore: 0.5, FogIndex: 14},
	}

	s := Summarize(rows)
	if s.Rows != 3 || s.Populated != 2 || s.Zeroed != 1 {
		t.Errorf("Unexpected counts %+v", s)
	}
	if math.Abs(s.PolarityMean) > 1e-12 || math.Abs(s.FogIndexMean-12) > 1e-12 {
		t.Errorf("Unexpected means %+v", s)
	}
	// Sample standard deviation of {10, 14}.
	if math.Abs(s.FogIndexStdDev-math.Sqrt(8)) > 1e-12 {
		t.Errorf("Expected fog stddev %v, got %v", math.Sqrt(8), s.FogIndexStdDev)
	}
	if s.SubjectivityStdDev != 0 {
		t.Errorf("Expected zero subjectivity stddev, got %v", s.SubjectivityStdDev)
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	if s := Summarize(nil); s.Rows != 0 || s.FogIndexMean != 0 {
		t.Errorf("Empty batch should summarize to zero, got %+v", s)
	}

	s := Summarize([]MetricsRow{{ID: "1", FogIndex: 7}})
	if s.FogIndexMean != 7 || s.FogIndexStdDev != 0 {
		t.Errorf("Single row should have its own mean and no spread, got %+v", s)
	}
}
