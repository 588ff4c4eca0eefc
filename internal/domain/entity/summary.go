// Package entity defines the domain entities of the summarizer service:
// stored summaries and usage events, together with their validation rules.
package entity

import "time"

// SourceType describes where the summarized text came from.
type SourceType string

const (
	// SourceURL means the text was extracted from a fetched article URL.
	SourceURL SourceType = "url"
	// SourceText means the caller supplied raw text directly.
	SourceText SourceType = "text"
)

// Valid reports whether the source type is one of the known variants.
func (s SourceType) Valid() bool {
	return s == SourceURL || s == SourceText
}

// Summary is a stored summarization result.
// SourceContent is truncated at creation time (the URL or a prefix of the raw
// text), never the full document.
type Summary struct {
	ID             int64
	SourceType     SourceType
	SourceContent  string
	Summary        string
	WordCount      int
	OriginalLength int
	Method         string
	CreatedAt      time.Time
}

// Validate checks the invariants a summary must satisfy before persistence.
func (s *Summary) Validate() error {
	if !s.SourceType.Valid() {
		return &ValidationError{Field: "sourceType", Message: "must be 'url' or 'text'"}
	}
	if s.Summary == "" {
		return &ValidationError{Field: "summary", Message: "is required"}
	}
	if s.WordCount < 0 {
		return &ValidationError{Field: "wordCount", Message: "must be non-negative"}
	}
	if s.OriginalLength < 0 {
		return &ValidationError{Field: "originalLength", Message: "must be non-negative"}
	}
	if s.Method == "" {
		return &ValidationError{Field: "method", Message: "is required"}
	}
	return nil
}
