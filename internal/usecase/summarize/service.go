package summarize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"article-summarizer/internal/domain/entity"
	"article-summarizer/internal/observability/metrics"
	"article-summarizer/internal/repository"
	"article-summarizer/internal/summarizer"
	"article-summarizer/internal/utils/text"
)

const (
	// MinTextRunes is the minimum trimmed input length worth summarizing.
	MinTextRunes = 50

	// maxURLContentRunes and maxTextContentRunes bound the source_content
	// column: the stored value is a reference to the input, not the input.
	maxURLContentRunes  = 500
	maxTextContentRunes = 200
)

// Strategy is one summarization method. Extractive is the only variant today;
// new methods register themselves under their Method tag.
type Strategy interface {
	Method() summarizer.Method
	Summarize(text string, sentenceCount int) (summarizer.Result, error)
}

// Input represents the parameters for one summarization request.
// Exactly one of URL and Text should be set; when both are, URL wins.
type Input struct {
	URL           string
	Text          string
	Method        summarizer.Method
	SentenceCount int
}

// Output is the result of a summarization request.
type Output struct {
	Result summarizer.Result
	Source entity.SourceType
	Method summarizer.Method
	Title  string
	Stored *entity.Summary
}

// Service provides the summarize use case. It acquires text, runs the
// configured strategy, and persists the stored record.
type Service struct {
	Fetcher    ArticleFetcher
	Summaries  repository.SummaryRepository
	strategies map[summarizer.Method]Strategy
}

// NewService wires a summarize service with the given strategies.
func NewService(fetcher ArticleFetcher, summaries repository.SummaryRepository, strategies ...Strategy) *Service {
	m := make(map[summarizer.Method]Strategy, len(strategies))
	for _, s := range strategies {
		m[s.Method()] = s
	}
	return &Service{Fetcher: fetcher, Summaries: summaries, strategies: m}
}

// Summarize runs one summarization request end to end.
//
// Validation failures and fetch failures are returned to the caller; the
// caller is responsible for recording the usage event either way.
func (s *Service) Summarize(ctx context.Context, in Input) (*Output, error) {
	if in.URL == "" && in.Text == "" {
		return nil, ErrNoInputProvided
	}
	if in.SentenceCount < 0 {
		return nil, ErrInvalidSentenceCount
	}

	strategy, ok := s.strategies[in.Method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", summarizer.ErrUnknownMethod, in.Method)
	}

	var (
		input         string
		title         string
		sourceType    entity.SourceType
		sourceContent string
	)
	if in.URL != "" {
		article, err := s.Fetcher.Fetch(ctx, in.URL)
		if err != nil {
			return nil, fmt.Errorf("fetch article: %w", err)
		}
		input = article.Text
		title = article.Title
		sourceType = entity.SourceURL
		sourceContent = text.TruncateRunes(in.URL, maxURLContentRunes)
	} else {
		input = in.Text
		sourceType = entity.SourceText
		sourceContent = text.TruncateRunes(in.Text, maxTextContentRunes)
	}

	if text.CountRunes(strings.TrimSpace(input)) < MinTextRunes {
		return nil, ErrTextTooShort
	}

	start := time.Now()
	result, err := strategy.Summarize(input, in.SentenceCount)
	metrics.RecordSummarization(in.Method.String(), err == nil, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	metrics.RecordCompression(result.WordCount, result.OriginalLength)

	// A zero-sentence request yields an empty summary; there is nothing
	// worth storing in history.
	if result.SentencesUsed == 0 {
		return &Output{Result: result, Source: sourceType, Method: in.Method, Title: title}, nil
	}

	stored := &entity.Summary{
		SourceType:     sourceType,
		SourceContent:  sourceContent,
		Summary:        result.SummaryText,
		WordCount:      result.WordCount,
		OriginalLength: result.OriginalLength,
		Method:         in.Method.String(),
	}
	if err := stored.Validate(); err != nil {
		return nil, fmt.Errorf("validate summary: %w", err)
	}
	if err := s.Summaries.Create(ctx, stored); err != nil {
		return nil, fmt.Errorf("save summary: %w", err)
	}

	if count, err := s.Summaries.Count(ctx); err == nil {
		metrics.UpdateSummariesTotal(count)
	}

	return &Output{
		Result: result,
		Source: sourceType,
		Method: in.Method,
		Title:  title,
		Stored: stored,
	}, nil
}
