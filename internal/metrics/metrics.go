package metrics

import (
	"math"
	"strings"
)

// Snapshot holds the measurements derived from one input/summary pair.
type Snapshot struct {
	InputWords      int
	SummaryWords    int
	CompressionRate float64 // percentage reduction in word count
	Readability     float64 // Flesch reading ease of the summary
}

// Compute derives all metrics for an input text and its summary.
func Compute(input, summary string) Snapshot {
	inWords := len(strings.Fields(input))
	sumWords := len(strings.Fields(summary))

	var rate float64
	if inWords > 0 {
		rate = round2(100 - float64(sumWords)/float64(inWords)*100)
	}

	var readability float64
	if strings.TrimSpace(summary) != "" {
		readability = round2(fleschReadingEase(summary))
	}

	return Snapshot{
		InputWords:      inWords,
		SummaryWords:    sumWords,
		CompressionRate: rate,
		Readability:     readability,
	}
}

// fleschReadingEase computes 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
// Higher scores read easier; long sentences and long words pull it down.
func fleschReadingEase(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := countSentences(text)
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordCount := float64(len(words))
	return 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)
}

// countSentences counts runs of sentence-ending punctuation. Text with words
// but no terminator counts as one sentence.
func countSentences(text string) int {
	n := 0
	inRun := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inRun {
				n++
				inRun = true
			}
		default:
			inRun = false
		}
	}
	if n == 0 {
		n = 1
	}
	return n
}

// countSyllables approximates syllables as vowel groups, discounting a silent
// trailing 'e'. Every word counts at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	n := 0
	prevVowel := false
	lastVowelRune := rune(0)
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			n++
			lastVowelRune = r
		}
		prevVowel = v
	}
	if n > 1 && strings.HasSuffix(strings.TrimRight(word, ".,!?;:\"')"), "e") && lastVowelRune == 'e' {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
