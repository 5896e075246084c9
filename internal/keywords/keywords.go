package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultCount is the number of keywords returned when the caller does not choose.
const DefaultCount = 5

// Tokens shorter than four characters are noise words and are dropped.
// The class spells out letters, digits and underscore so that non-ASCII
// words tokenize too; maximal-run matching makes explicit boundaries
// unnecessary.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]{4,}`)

// Top returns the n most frequent tokens of the text joined by "; ".
// Tokens are lower-cased; ties keep first-encountered order.
func Top(text string, n int) string {
	if n <= 0 {
		n = DefaultCount
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	for i, w := range words {
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
		}
		counts[w]++
	}

	unique := make([]string, 0, len(counts))
	for w := range counts {
		unique = append(unique, w)
	}
	sort.SliceStable(unique, func(i, j int) bool {
		if counts[unique[i]] != counts[unique[j]] {
			return counts[unique[i]] > counts[unique[j]]
		}
		return firstSeen[unique[i]] < firstSeen[unique[j]]
	})

	if len(unique) > n {
		unique = unique[:n]
	}
	return strings.Join(unique, "; ")
}
