// Package summarize orchestrates the summarization use case: acquire text
// (raw or fetched from a URL), run the extractive pipeline, persist the
// result. Usage analytics are recorded by the caller from the success signal.
package summarize

import "errors"

// Sentinel errors for the summarize use case.
var (
	// ErrNoInputProvided indicates that neither a URL nor raw text was supplied.
	ErrNoInputProvided = errors.New("either 'url' or 'text' is required")

	// ErrTextTooShort indicates that the acquired text is below the minimum
	// length worth summarizing.
	ErrTextTooShort = errors.New("text is too short to summarize")

	// ErrInvalidSentenceCount indicates a negative requested sentence count.
	ErrInvalidSentenceCount = errors.New("sentence count must be non-negative")
)

// Sentinel errors for article acquisition. The infra fetcher wraps its
// failures in these so the handler can map them without knowing transport
// details.
var (
	// ErrInvalidURL indicates the URL is malformed, uses a forbidden scheme,
	// or resolves to a blocked address.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrFetchTimeout indicates the article fetch exceeded its deadline.
	ErrFetchTimeout = errors.New("article fetch timed out")

	// ErrBodyTooLarge indicates the response exceeded the size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTooManyRedirects indicates the redirect limit was exceeded.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrExtractFailed indicates no readable article content was found.
	ErrExtractFailed = errors.New("could not extract article content")
)
