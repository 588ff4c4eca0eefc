// Package summary provides the HTTP handlers for the summarization API:
// creating summaries, browsing stored history, and usage analytics.
package summary

import (
	"time"

	"article-summarizer/internal/domain/entity"
)

// SummarizeRequest is the JSON body of POST /summarize.
// Exactly one of URL and Text must be set. Sentences defaults to 5 when
// omitted; an explicit 0 requests an empty summary.
type SummarizeRequest struct {
	URL       string `json:"url,omitempty"`
	Text      string `json:"text,omitempty"`
	Method    string `json:"method,omitempty"`
	Sentences *int   `json:"sentences,omitempty"`
}

// SummarizeResponse is the JSON body returned by POST /summarize.
type SummarizeResponse struct {
	ID             int64  `json:"id,omitempty"`
	Summary        string `json:"summary"`
	Source         string `json:"source"`
	Method         string `json:"method"`
	Title          string `json:"title,omitempty"`
	WordCount      int    `json:"word_count"`
	OriginalLength int    `json:"original_length"`
	SentencesUsed  int    `json:"sentences_used"`
}

// HistoryDTO is one stored summary in the history listing.
type HistoryDTO struct {
	ID             int64     `json:"id"`
	SourceType     string    `json:"source_type"`
	SourceContent  string    `json:"source_content"`
	Summary        string    `json:"summary"`
	WordCount      int       `json:"word_count"`
	OriginalLength int       `json:"original_length"`
	Method         string    `json:"method"`
	CreatedAt      time.Time `json:"created_at"`
}

func historyDTO(s *entity.Summary) HistoryDTO {
	return HistoryDTO{
		ID:             s.ID,
		SourceType:     string(s.SourceType),
		SourceContent:  s.SourceContent,
		Summary:        s.Summary,
		WordCount:      s.WordCount,
		OriginalLength: s.OriginalLength,
		Method:         s.Method,
		CreatedAt:      s.CreatedAt,
	}
}

// AnalyticsResponse is the JSON body of GET /analytics. SuccessRate is
// pre-formatted as a percentage string, e.g. "66.67%".
type AnalyticsResponse struct {
	TotalCalls       int64   `json:"total_api_calls"`
	SuccessfulCalls  int64   `json:"successful_calls"`
	SuccessRate      string  `json:"success_rate"`
	TotalSummaries   int64   `json:"total_summaries"`
	AvgSummaryLength float64 `json:"avg_summary_length"`
}
