// Package postgres provides PostgreSQL implementations of the repository
// interfaces backing summary history and usage analytics.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"article-summarizer/internal/domain/entity"
	"article-summarizer/internal/repository"
)

// SummaryRepo implements repository.SummaryRepository using PostgreSQL.
type SummaryRepo struct{ db *sql.DB }

// NewSummaryRepo creates a new PostgreSQL-backed summary repository.
func NewSummaryRepo(db *sql.DB) repository.SummaryRepository {
	return &SummaryRepo{db: db}
}

// Create stores a new summary and assigns its generated ID and timestamp.
func (repo *SummaryRepo) Create(ctx context.Context, s *entity.Summary) error {
	const query = `
INSERT INTO summaries (source_type, source_content, summary, word_count, original_length, method)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at
`
	err := repo.db.QueryRowContext(ctx, query,
		string(s.SourceType), s.SourceContent, s.Summary,
		s.WordCount, s.OriginalLength, s.Method,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return nil
}

// Get returns the summary with the given ID, or nil when absent.
func (repo *SummaryRepo) Get(ctx context.Context, id int64) (*entity.Summary, error) {
	const query = `
SELECT id, source_type, source_content, summary, word_count, original_length, method, created_at
FROM summaries
WHERE id = $1
LIMIT 1
`
	var s entity.Summary
	var sourceType string
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &sourceType, &s.SourceContent, &s.Summary,
		&s.WordCount, &s.OriginalLength, &s.Method, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	s.SourceType = entity.SourceType(sourceType)
	return &s, nil
}

// ListRecent returns the most recent summaries, newest first.
func (repo *SummaryRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Summary, error) {
	const query = `
SELECT id, source_type, source_content, summary, word_count, original_length, method, created_at
FROM summaries
ORDER BY created_at DESC
LIMIT $1
`
	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ListRecent: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]*entity.Summary, 0, limit)
	for rows.Next() {
		var s entity.Summary
		var sourceType string
		err := rows.Scan(&s.ID, &sourceType, &s.SourceContent, &s.Summary,
			&s.WordCount, &s.OriginalLength, &s.Method, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("ListRecent: Scan: %w", err)
		}
		s.SourceType = entity.SourceType(sourceType)
		summaries = append(summaries, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecent: rows.Err: %w", err)
	}

	return summaries, nil
}

// Delete removes the summary with the given ID.
// Returns entity.ErrNotFound when no row matched.
func (repo *SummaryRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM summaries WHERE id = $1`

	result, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Count returns the total number of stored summaries.
func (repo *SummaryRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM summaries`

	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: QueryRowContext: %w", err)
	}
	return count, nil
}

// AvgWordCount returns the mean summary word count, 0 with no rows.
func (repo *SummaryRepo) AvgWordCount(ctx context.Context) (float64, error) {
	const query = `SELECT COALESCE(AVG(word_count), 0) FROM summaries`

	var avg float64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&avg); err != nil {
		return 0, fmt.Errorf("AvgWordCount: QueryRowContext: %w", err)
	}
	return avg, nil
}
