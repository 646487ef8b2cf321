package analytics

import "strings"

// Similarity computes the Jaccard index of two notes' word sets:
// |intersection| / |union| over the lowercase whitespace tokens of
// "title content". The score is symmetric and always in [0, 1]; it is
// 0 when either note has no tokens at all.
func Similarity(a, b Note) float64 {
	wordsA := tokenSet(a)
	wordsB := tokenSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection

	return float64(intersection) / float64(union)
}

// tokenSet builds the lowercase word set of a note's title and content.
func tokenSet(n Note) map[string]struct{} {
	text := strings.ToLower(n.Title + " " + n.Content)
	set := make(map[string]struct{})
	for _, w := range strings.Fields(text) {
		set[w] = struct{}{}
	}
	return set
}
