// Package text provides small utilities for text measurement shared across
// the summarization pipeline and its HTTP surface.
package text

import "strings"

// CountWords counts whitespace-delimited words in the given text.
// This is a raw split: no lowercasing, no punctuation stripping, no stopword
// filtering. It backs the word_count and original_length counters, which are
// defined independently of the pipeline's tokenization rules.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// CountRunes counts Unicode characters in the given text. Byte length
// undercounts multi-byte scripts, so source truncation limits use runes.
func CountRunes(s string) int {
	return len([]rune(s))
}

// TruncateRunes returns s cut to at most n runes.
func TruncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
