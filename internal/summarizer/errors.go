package summarizer

import "errors"

// Sentinel errors for the summarization pipeline.
var (
	// ErrEmptyInput indicates that the input text is empty or whitespace-only.
	// This is the only error the pipeline raises; every other degenerate input
	// (all stopwords, zero requested sentences, over-requesting) degrades to a
	// deterministic result instead of failing.
	ErrEmptyInput = errors.New("input text is empty")

	// ErrUnknownMethod indicates that the requested summarization method is not supported.
	ErrUnknownMethod = errors.New("unknown summarization method")
)
