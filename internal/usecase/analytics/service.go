// Package analytics records API usage events and derives aggregate metrics
// from them. Recording is best effort: a failed write is logged, never
// surfaced to the request that triggered it.
package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"article-summarizer/internal/domain/entity"
	"article-summarizer/internal/observability/metrics"
	"article-summarizer/internal/repository"
)

// Stats is the aggregate usage view exposed by the analytics endpoint.
type Stats struct {
	TotalCalls       int64
	SuccessfulCalls  int64
	SuccessRate      float64 // percentage, 0 with no calls
	TotalSummaries   int64
	AvgSummaryLength float64 // mean word count, 0 with no summaries
}

// Service provides usage recording and aggregate statistics.
type Service struct {
	Usage     repository.UsageRepository
	Summaries repository.SummaryRepository
	Logger    *slog.Logger
}

// Record appends a usage event for the given endpoint. Failures are logged
// and swallowed so analytics can never break the request path.
func (s *Service) Record(ctx context.Context, endpoint string, success bool) {
	metrics.RecordAPIUsage(endpoint, success)

	event := &entity.UsageEvent{Endpoint: endpoint, Success: success}
	if err := event.Validate(); err != nil {
		s.logger().Warn("invalid usage event", slog.Any("error", err))
		return
	}
	if err := s.Usage.Record(ctx, event); err != nil {
		s.logger().Warn("failed to record usage event",
			slog.String("endpoint", endpoint),
			slog.Bool("success", success),
			slog.Any("error", err))
	}
}

// Stats aggregates recorded usage events and stored summaries.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	usage, err := s.Usage.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("usage stats: %w", err)
	}

	totalSummaries, err := s.Summaries.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count summaries: %w", err)
	}
	avg, err := s.Summaries.AvgWordCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("average word count: %w", err)
	}

	stats := &Stats{
		TotalCalls:       usage.TotalCalls,
		SuccessfulCalls:  usage.SuccessfulCalls,
		TotalSummaries:   totalSummaries,
		AvgSummaryLength: avg,
	}
	if usage.TotalCalls > 0 {
		stats.SuccessRate = float64(usage.SuccessfulCalls) / float64(usage.TotalCalls) * 100
	}
	return stats, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
