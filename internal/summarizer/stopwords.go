package summarizer

import "sync"

// Stopwords is a read-only set of high-frequency, low-information words that
// are excluded from frequency scoring. The zero value matches nothing.
//
// Thread safety: a Stopwords value is immutable after construction and may be
// shared freely across concurrent pipeline invocations.
type Stopwords struct {
	words map[string]struct{}
}

// NewStopwords builds a stopword set from the given words.
// Words are matched exactly against normalized (lowercased) tokens.
func NewStopwords(words []string) Stopwords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return Stopwords{words: set}
}

// Contains reports whether the given normalized token is a stopword.
func (s Stopwords) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s Stopwords) Len() int { return len(s.words) }

// defaultStopwords initializes the English stopword set exactly once.
// sync.OnceValue makes first-use initialization idempotent and safe to race;
// subsequent reads need no synchronization because the set is never mutated.
var defaultStopwords = sync.OnceValue(func() Stopwords {
	return NewStopwords(englishStopwords)
})

// DefaultStopwords returns the process-wide English stopword set.
func DefaultStopwords() Stopwords {
	return defaultStopwords()
}

// englishStopwords is the standard English stopword list.
var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as",
	"until", "while", "of", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than",
	"too", "very", "s", "t", "can", "will", "just", "don", "should",
	"now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren",
	"couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn", "ma",
	"mightn", "mustn", "needn", "shan", "shouldn", "wasn", "weren",
	"won", "wouldn",
}
