package repository

import (
	"context"

	"article-summarizer/internal/domain/entity"
)

// UsageStats is the aggregate view over recorded usage events.
type UsageStats struct {
	TotalCalls      int64
	SuccessfulCalls int64
}

// UsageRepository appends and aggregates API usage events.
type UsageRepository interface {
	// Record appends a usage event.
	Record(ctx context.Context, e *entity.UsageEvent) error

	// Stats returns call totals across all recorded events.
	Stats(ctx context.Context) (UsageStats, error)
}
