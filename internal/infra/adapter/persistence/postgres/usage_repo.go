package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"article-summarizer/internal/domain/entity"
	"article-summarizer/internal/repository"
)

// UsageRepo implements repository.UsageRepository using PostgreSQL.
type UsageRepo struct{ db *sql.DB }

// NewUsageRepo creates a new PostgreSQL-backed usage event repository.
func NewUsageRepo(db *sql.DB) repository.UsageRepository {
	return &UsageRepo{db: db}
}

// Record appends a usage event and assigns its generated ID and timestamp.
func (repo *UsageRepo) Record(ctx context.Context, e *entity.UsageEvent) error {
	const query = `
INSERT INTO usage_events (endpoint, success)
VALUES ($1, $2)
RETURNING id, created_at
`
	err := repo.db.QueryRowContext(ctx, query, e.Endpoint, e.Success).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("Record: QueryRowContext: %w", err)
	}
	return nil
}

// Stats returns call totals across all recorded events.
func (repo *UsageRepo) Stats(ctx context.Context) (repository.UsageStats, error) {
	const query = `
SELECT COUNT(*), COUNT(*) FILTER (WHERE success)
FROM usage_events
`
	var stats repository.UsageStats
	err := repo.db.QueryRowContext(ctx, query).
		Scan(&stats.TotalCalls, &stats.SuccessfulCalls)
	if err != nil {
		return repository.UsageStats{}, fmt.Errorf("Stats: QueryRowContext: %w", err)
	}
	return stats, nil
}
