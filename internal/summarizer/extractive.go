// Package summarizer implements extractive text summarization: selecting a
// subset of a document's own sentences, ranked by how representative their
// words are of the whole document, returned in original order.
//
// The pipeline is a single deterministic pass with four stages, each consuming
// the previous stage's output: segmentation, frequency analysis, sentence
// scoring, and top-N selection with order restoration. It performs no I/O,
// keeps no state between invocations, and is safe for concurrent use.
package summarizer

import (
	"slices"
	"strings"

	"article-summarizer/internal/utils/text"
)

// Result is the output of a summarization run.
type Result struct {
	// SummaryText is the selected sentences in original order, joined with
	// single spaces. Empty when zero sentences were requested.
	SummaryText string

	// WordCount is the raw whitespace word count of SummaryText.
	WordCount int

	// OriginalLength is the raw whitespace word count of the full input,
	// computed independently of tokenization and stopword filtering.
	OriginalLength int

	// SentencesUsed is min(requested, available).
	SentencesUsed int
}

// Extractive is the frequency-based extractive summarization strategy.
// The zero value is not usable; construct with NewExtractive.
type Extractive struct {
	stop Stopwords
}

// NewExtractive returns an extractive summarizer using the default English
// stopword set.
func NewExtractive() Extractive {
	return Extractive{stop: DefaultStopwords()}
}

// NewExtractiveWithStopwords returns an extractive summarizer using a custom
// stopword set. The set must not be mutated after being passed in.
func NewExtractiveWithStopwords(stop Stopwords) Extractive {
	return Extractive{stop: stop}
}

// Method returns MethodExtractive.
func (e Extractive) Method() Method { return MethodExtractive }

// Summarize produces an extractive summary of at most sentenceCount sentences.
//
// Requesting more sentences than exist returns all of them; sentenceCount 0
// yields an empty summary. The only error is ErrEmptyInput for empty or
// whitespace-only text. Given identical arguments the output is byte-identical
// across calls: ranking ties break on lower original index, so even a document
// with no scorable tokens degrades to "first N sentences" rather than an
// arbitrary subset.
func (e Extractive) Summarize(input string, sentenceCount int) (Result, error) {
	sentences, err := Segment(input, e.stop)
	if err != nil {
		return Result{}, err
	}
	if sentenceCount < 0 {
		sentenceCount = 0
	}

	freq := BuildFrequencyTable(sentences)
	scored := scoreSentences(sentences, freq)

	selected := selectTop(scored, sentenceCount)

	raws := make([]string, len(selected))
	for i, s := range selected {
		raws[i] = s.Raw
	}
	summary := strings.Join(raws, " ")

	return Result{
		SummaryText:    summary,
		WordCount:      text.CountWords(summary),
		OriginalLength: text.CountWords(input),
		SentencesUsed:  len(selected),
	}, nil
}

// selectTop picks the top-n sentences by (score descending, index ascending),
// then restores original document order within the chosen subset. The re-sort
// by index is what keeps the summary readable instead of a jumble of
// highest-scoring fragments.
func selectTop(scored []ScoredSentence, n int) []ScoredSentence {
	if n > len(scored) {
		n = len(scored)
	}

	ranked := slices.Clone(scored)
	slices.SortStableFunc(ranked, func(a, b ScoredSentence) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		return a.Index - b.Index
	})

	chosen := ranked[:n]
	slices.SortFunc(chosen, func(a, b ScoredSentence) int {
		return a.Index - b.Index
	})
	return chosen
}
