package readmetrics

import (
	"math"
	"testing"
)

func TestReadability(t *testing.T) {
	tests := []struct {
		text     string
		expected Readability
		desc     string
	}{
		{
			"I think we should go.",
			Readability{Sentences: 1, Words: 5, AvgSentenceLength: 5, FogIndex: 2, AvgWordLength: 3.4, PersonalPronounCount: 2},
			"Simple sentence",
		},
		{
			"Beautiful information.",
			Readability{Sentences: 1, Words: 2, ComplexWords: 2, AvgSentenceLength: 2, PctComplexWords: 100, FogIndex: 40.8, AvgWordLength: 10.5},
			"Only complex words",
		},
		{
			"The cat sat. The dog ran.",
			Readability{Sentences: 2, Words: 6, AvgSentenceLength: 3, FogIndex: 1.2, AvgWordLength: 20.0 / 6},
			"Two sentences",
		},
		{"", Readability{}, "Empty text"},
	}

	ra, err := NewReadabilityAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := ra.Analyze(tt.text)
			if got.Sentences != tt.expected.Sentences || got.Words != tt.expected.Words ||
				got.ComplexWords != tt.expected.ComplexWords ||
				got.PersonalPronounCount != tt.expected.PersonalPronounCount {
				t.Errorf("Text: %q\nExpected counts: %+v\nGot: %+v", tt.text, tt.expected, got)
			}
			for _, f := range []struct {
				name      string
				got, want float64
			}{
				{"avg sentence length", got.AvgSentenceLength, tt.expected.AvgSentenceLength},
				{"pct complex words", got.PctComplexWords, tt.expected.PctComplexWords},
				{"fog index", got.FogIndex, tt.expected.FogIndex},
				{"avg word length", got.AvgWordLength, tt.expected.AvgWordLength},
			} {
				if math.Abs(f.got-f.want) > 1e-9 {
					t.Errorf("Text: %q\nExpected %s: %v\nGot: %v", tt.text, f.name, f.want, f.got)
				}
			}
		})
	}
}

func TestCountPersonalPronouns(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"I think we should go.", 2},
		{"The bus took us home.", 1},
		{"Ours, not hours.", 1},
		{"My myself mystery", 1},
		{"I'm sure WE can", 2},
		// The country abbreviation is indistinguishable from the pronoun.
		{"Trade with the US grew.", 1},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := CountPersonalPronouns(tt.text); got != tt.expected {
				t.Errorf("CountPersonalPronouns(%q) = %d, expected %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestSentenceSegmenter(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	if err != nil {
		t.Fatalf("Failed to create segmenter: %v", err)
	}

	got := seg.Segment("Is it raining? Yes! Bring an umbrella.")
	if len(got) != 3 {
		t.Fatalf("Expected 3 sentences, got %d: %v", len(got), got)
	}
	if got[2].String() != "Bring an umbrella." {
		t.Errorf("Unexpected last sentence %q", got[2])
	}
	if n := len(seg.Segment("   ")); n != 0 {
		t.Errorf("Blank text should have no sentences, got %d", n)
	}
}
