package readmetrics

import "testing"

func TestStripStopwords(t *testing.T) {
	stop := NewLexicon("the", "is")

	tests := []struct {
		text     string
		expected string
		desc     string
	}{
		{"The cat is happy", "cat happy", "Case-insensitive removal"},
		{"THE Cat   IS\nHappy", "Cat Happy", "Original case kept, whitespace collapsed"},
		{"the is the", "", "Everything removed"},
		{"the, cat", "the, cat", "Punctuation is part of the token"},
		{"", "", "Empty text"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := StripStopwords(tt.text, stop); got != tt.expected {
				t.Errorf("StripStopwords(%q) = %q, expected %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestStripStopwordsNilSet(t *testing.T) {
	if got := StripStopwords("a  b", nil); got != "a b" {
		t.Errorf("expected %q, got %q", "a b", got)
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"I think we should go.", 5},
		{"Hello , world !", 2},
		{"-- ... ?!", 0},
		{"e-mail costs $5", 3},
		{"snake_case", 1},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := CountWords(tt.text); got != tt.expected {
				t.Errorf("CountWords(%q) = %d, expected %d", tt.text, got, tt.expected)
			}
		})
	}
}
