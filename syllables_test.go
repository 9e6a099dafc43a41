package readmetrics

import "testing"

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		{"the", 1},
		{"I", 1},
		{"time", 1},
		{"whale", 1},
		{"makes", 1},
		{"jumped", 1},
		{"free", 1},
		{"table", 2},
		{"people", 2},
		{"wanted", 2},
		{"boxes", 2},
		{"yellow", 2},
		{"complex", 2},
		{"beautiful", 3},
		{"syllable", 3},
		{"Beautiful", 3},
		{"information", 4},
		{"readability", 5},
		{"create", 2},
		{"created", 3},
		{"period", 3},
		{"video", 3},
		{"radio", 3},
		{"area", 3},
		{"idea", 3},
		{"medium", 3},
		{"actual", 3},
		{"influence", 3},
		{"experience", 4},
		{"being", 2},
		{"going", 2},
		{"science", 2},
		{"quiet", 2},
		{"poem", 2},
		{"client", 2},
		{"nation", 2},
		{"million", 2},
		{"social", 2},
		{"language", 2},
		{"friend", 1},
		{"senior", 2},
		{"someone", 2},
		{".", 0},
		{"2024", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := CountSyllables(tt.word); got != tt.expected {
				t.Errorf("CountSyllables(%q) = %d, expected %d", tt.word, got, tt.expected)
			}
		})
	}
}

func TestIsComplexWord(t *testing.T) {
	if IsComplexWord("cat") {
		t.Error("cat should not be complex")
	}
	if IsComplexWord("people") {
		t.Error("people should not be complex")
	}
	if !IsComplexWord("beautiful") {
		t.Error("beautiful should be complex")
	}
	for _, w := range []string{"created", "period", "video", "radio", "area", "idea", "influence", "experience"} {
		if !IsComplexWord(w) {
			t.Errorf("%s should be complex", w)
		}
	}
}
