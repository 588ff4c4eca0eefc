package summarizer

import (
	"strings"
	"unicode"
)

// Sentence is a single sentence of the input document.
// Index is the sentence's 0-based position in the original text; it is stable
// and unique for the lifetime of a pipeline invocation. Tokens holds the
// sentence's normalized words with stopwords already removed.
type Sentence struct {
	Index  int
	Raw    string
	Tokens []string
}

// abbreviations lists period-terminated words that do not end a sentence.
// Matched case-insensitively against the word preceding a period.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"st": {}, "vs": {}, "etc": {}, "fig": {}, "inc": {}, "ltd": {}, "co": {},
	"dept": {}, "est": {}, "approx": {},
}

// Segment splits raw text into its ordered sequence of sentences, each with
// normalized, stopword-filtered tokens. It returns ErrEmptyInput when the
// trimmed input is empty. Single-sentence input is not an error.
func Segment(text string, stop Stopwords) ([]Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	cleaned := cleanText(text)
	raws := splitSentences(cleaned)

	sentences := make([]Sentence, 0, len(raws))
	for i, raw := range raws {
		sentences = append(sentences, Sentence{
			Index:  i,
			Raw:    raw,
			Tokens: tokenize(raw, stop),
		})
	}
	return sentences, nil
}

// cleanText collapses whitespace runs to single spaces and drops characters
// outside letters, digits, whitespace and basic sentence punctuation.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	space := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsLetter(r) || unicode.IsDigit(r) ||
			r == '.' || r == ',' || r == '!' || r == '?' || r == '-' || r == '\'':
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// splitSentences splits cleaned text on sentence-ending punctuation.
// Decimal numbers and common abbreviations do not end a sentence.
// Every character of the input belongs to exactly one sentence, in order;
// exact boundary placement is not part of the documented contract.
func splitSentences(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0

	flush := func(end int) {
		s := strings.TrimSpace(string(runes[start:end]))
		if s != "" {
			out = append(out, s)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Swallow terminator runs ("..", "?!") as one boundary.
		if i+1 < len(runes) && isTerminator(runes[i+1]) {
			continue
		}
		if r == '.' && !periodEndsSentence(runes, start, i) {
			continue
		}
		flush(i + 1)
	}
	flush(len(runes))

	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// periodEndsSentence decides whether the period at position i is a sentence
// boundary rather than a decimal point or abbreviation marker.
func periodEndsSentence(runes []rune, start, i int) bool {
	// Decimal number: digit on both sides ("3.14").
	if i > 0 && i+1 < len(runes) &&
		unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
		return false
	}

	// Word immediately before the period.
	j := i
	for j > start && !unicode.IsSpace(runes[j-1]) && runes[j-1] != '.' {
		j--
	}
	word := strings.ToLower(string(runes[j:i]))

	// Single letters ("E. Coli") and known abbreviations do not end sentences.
	if len(word) == 1 && unicode.IsLetter(runes[j]) {
		return false
	}
	if _, ok := abbreviations[word]; ok {
		return false
	}
	return true
}

// tokenize lowercases the sentence, splits on non-alphanumeric runes and
// discards stopwords. The surviving tokens are what frequency analysis and
// scoring operate on.
func tokenize(raw string, stop Stopwords) []string {
	fields := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if stop.Contains(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
