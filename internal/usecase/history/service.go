// Package history provides use cases for browsing and pruning stored
// summaries.
package history

import (
	"context"
	"errors"
	"fmt"

	"article-summarizer/internal/domain/entity"
	"article-summarizer/internal/observability/metrics"
	"article-summarizer/internal/repository"
)

// Sentinel errors for history use case operations.
var (
	// ErrSummaryNotFound indicates that the requested summary does not exist.
	ErrSummaryNotFound = errors.New("summary not found")

	// ErrInvalidSummaryID indicates a non-positive summary ID.
	ErrInvalidSummaryID = errors.New("invalid summary ID")
)

const (
	// DefaultLimit is used when the caller does not specify one.
	DefaultLimit = 10

	// MaxLimit caps a single listing.
	MaxLimit = 100
)

// Service provides summary history use cases.
type Service struct {
	Repo repository.SummaryRepository
}

// Recent returns the most recent summaries, newest first.
// A non-positive limit falls back to DefaultLimit; limits above MaxLimit are
// clamped.
func (s *Service) Recent(ctx context.Context, limit int) ([]*entity.Summary, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	summaries, err := s.Repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent summaries: %w", err)
	}
	return summaries, nil
}

// Delete removes a summary by its ID.
// Returns ErrInvalidSummaryID for non-positive IDs and ErrSummaryNotFound
// when no such summary exists.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidSummaryID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrSummaryNotFound
		}
		return fmt.Errorf("delete summary: %w", err)
	}

	// Keep the stored-summaries gauge in step with deletions.
	if count, err := s.Repo.Count(ctx); err == nil {
		metrics.UpdateSummariesTotal(count)
	}
	return nil
}
