package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCompressionRate(t *testing.T) {
	hundred := strings.TrimSpace(strings.Repeat("word ", 100))

	tests := []struct {
		name     string
		input    string
		summary  string
		expected float64
	}{
		{"equal word counts", hundred, hundred, 0},
		{"empty summary", hundred, "", 100},
		{"half-length summary", hundred, strings.TrimSpace(strings.Repeat("word ", 50)), 50},
		{"empty input guards division", "", "anything here", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Compute(tt.input, tt.summary)
			assert.Equal(t, tt.expected, snap.CompressionRate)
		})
	}
}

func TestComputeWordCounts(t *testing.T) {
	snap := Compute("one two three", "one two")
	assert.Equal(t, 3, snap.InputWords)
	assert.Equal(t, 2, snap.SummaryWords)
}

func TestReadabilityEmptySummaryIsZero(t *testing.T) {
	snap := Compute("some input text here", "")
	assert.Equal(t, float64(0), snap.Readability)

	snap = Compute("some input text here", "   \n  ")
	assert.Equal(t, float64(0), snap.Readability)
}

func TestReadabilityKnownValue(t *testing.T) {
	// 3 words, 1 sentence, 3 syllables:
	// 206.835 - 1.015*3 - 84.6*1 = 119.19
	snap := Compute("irrelevant", "The cat sat.")
	assert.InDelta(t, 119.19, snap.Readability, 0.001)
}

func TestReadabilityDropsForDenseProse(t *testing.T) {
	simple := Compute("x", "The dog ran. The cat sat. All was well.")
	dense := Compute("x", "Institutional heterogeneity complicates longitudinal interpretability considerations substantially.")
	assert.Greater(t, simple.Readability, dense.Readability)
}

func TestCountSentences(t *testing.T) {
	assert.Equal(t, 3, countSentences("A. B! C?"))
	assert.Equal(t, 1, countSentences("no terminator at all"))
	assert.Equal(t, 1, countSentences("trailing ellipsis..."))
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		{"gopher", 2},
		{"code", 1},
		{"banana", 3},
		{"rhythm", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, countSyllables(tt.word), "word %q", tt.word)
	}
}
