package summarizer

// FrequencyTable maps each retained token of a document to its raw occurrence
// count and its weight, the count normalized by the single global maximum.
// Words present only as stopwords or punctuation never appear as keys.
//
// An empty table (document entirely stopwords/punctuation) is the no-signal
// condition: every weight is 0 and downstream scoring degrades to the
// deterministic index-order fallback instead of failing.
type FrequencyTable struct {
	counts   map[string]int
	maxCount int
}

// BuildFrequencyTable counts every retained token across all sentences.
// Stopwords were already excluded at segmentation time.
func BuildFrequencyTable(sentences []Sentence) FrequencyTable {
	counts := make(map[string]int)
	maxCount := 0
	for _, s := range sentences {
		for _, tok := range s.Tokens {
			counts[tok]++
			if counts[tok] > maxCount {
				maxCount = counts[tok]
			}
		}
	}
	return FrequencyTable{counts: counts, maxCount: maxCount}
}

// Count returns the raw occurrence count of a word, 0 if absent.
func (t FrequencyTable) Count(word string) int {
	return t.counts[word]
}

// Weight returns the normalized frequency of a word in [0,1].
// Ties in count receive identical weight.
func (t FrequencyTable) Weight(word string) float64 {
	if t.maxCount == 0 {
		return 0
	}
	return float64(t.counts[word]) / float64(t.maxCount)
}

// Len returns the number of distinct retained words.
func (t FrequencyTable) Len() int { return len(t.counts) }
