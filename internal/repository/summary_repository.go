// Package repository defines persistence interfaces consumed by the use case
// layer. Concrete adapters live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"article-summarizer/internal/domain/entity"
)

// SummaryRepository persists summarization results.
type SummaryRepository interface {
	// Create stores a new summary and assigns its ID.
	Create(ctx context.Context, s *entity.Summary) error

	// Get returns the summary with the given ID, or nil when absent.
	Get(ctx context.Context, id int64) (*entity.Summary, error)

	// ListRecent returns the most recent summaries, newest first,
	// at most limit entries.
	ListRecent(ctx context.Context, limit int) ([]*entity.Summary, error)

	// Delete removes the summary with the given ID.
	// Returns entity.ErrNotFound when no row matched.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of stored summaries.
	Count(ctx context.Context) (int64, error)

	// AvgWordCount returns the mean summary word count, 0 with no rows.
	AvgWordCount(ctx context.Context) (float64, error)
}
