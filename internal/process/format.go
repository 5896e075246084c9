package process

import (
	"strings"
	"unicode"
)

// Format selects how the summary is rendered.
type Format string

const (
	FormatParagraph    Format = "Paragraph"
	FormatBulletPoints Format = "Bullet Points"
)

// ParseFormat maps a form value to a Format; anything unrecognized renders
// as a paragraph.
func ParseFormat(s string) Format {
	if s == string(FormatBulletPoints) {
		return FormatBulletPoints
	}
	return FormatParagraph
}

// bulletPoints splits a summary into sentences and prefixes each non-empty
// one with a bullet marker, one per line.
func bulletPoints(summary string) string {
	var lines []string
	for _, sentence := range splitSentences(summary) {
		if strings.TrimSpace(sentence) == "" {
			continue
		}
		lines = append(lines, "• "+sentence)
	}
	return strings.Join(lines, "\n")
}

// splitSentences cuts after sentence-ending punctuation followed by
// whitespace. The whitespace between sentences is consumed.
func splitSentences(s string) []string {
	runes := []rune(s)
	var sentences []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		if i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		sentences = append(sentences, string(runes[start:i+1]))
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
