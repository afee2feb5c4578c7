package training

import "strings"

// Similarity scores two texts by word overlap: the number of words the two
// share (case-insensitive, whitespace-tokenized) divided by the larger word
// count. No stemming or stop-word handling is applied; the catalogue is
// small enough that raw overlap works. The measure is symmetric.
func Similarity(a, b string) float64 {
	wordsA := strings.Fields(strings.ToLower(a))
	wordsB := strings.Fields(strings.ToLower(b))

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(wordsA))
	for _, w := range wordsA {
		setA[w] = struct{}{}
	}
	setB := make(map[string]struct{}, len(wordsB))
	for _, w := range wordsB {
		setB[w] = struct{}{}
	}

	// Distinct common words keep the measure symmetric even when one side
	// repeats a word.
	common := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			common++
		}
	}

	total := len(wordsA)
	if len(wordsB) > total {
		total = len(wordsB)
	}
	return float64(common) / float64(total)
}
