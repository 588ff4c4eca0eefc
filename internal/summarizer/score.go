package summarizer

// ScoredSentence is a Sentence plus its relevance score.
// The score is the average normalized weight of the sentence's retained
// tokens; dividing by token count prevents bias toward longer sentences.
type ScoredSentence struct {
	Sentence
	Score float64
}

// scoreSentences assigns each sentence a score from its tokens' weights.
// The result preserves the order and length of the input. A sentence with no
// retained tokens scores exactly 0; it is never preferred over a sentence with
// positive score but stays eligible for the index-order fallback.
func scoreSentences(sentences []Sentence, freq FrequencyTable) []ScoredSentence {
	scored := make([]ScoredSentence, len(sentences))
	for i, s := range sentences {
		sum := 0.0
		for _, tok := range s.Tokens {
			sum += freq.Weight(tok)
		}
		score := 0.0
		if len(s.Tokens) > 0 {
			score = sum / float64(len(s.Tokens))
		}
		scored[i] = ScoredSentence{Sentence: s, Score: score}
	}
	return scored
}
