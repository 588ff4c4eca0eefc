package analytics_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-summarizer/internal/domain/entity"
	"article-summarizer/internal/repository"
	"article-summarizer/internal/usecase/analytics"
)

type fakeUsageRepo struct {
	events    []*entity.UsageEvent
	recordErr error
	stats     repository.UsageStats
	statsErr  error
}

func (r *fakeUsageRepo) Record(_ context.Context, e *entity.UsageEvent) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	r.events = append(r.events, e)
	return nil
}

func (r *fakeUsageRepo) Stats(context.Context) (repository.UsageStats, error) {
	if r.statsErr != nil {
		return repository.UsageStats{}, r.statsErr
	}
	return r.stats, nil
}

type fakeSummaryRepo struct {
	count    int64
	countErr error
	avg      float64
}

func (r *fakeSummaryRepo) Create(context.Context, *entity.Summary) error { return nil }
func (r *fakeSummaryRepo) Get(context.Context, int64) (*entity.Summary, error) {
	return nil, nil
}
func (r *fakeSummaryRepo) ListRecent(context.Context, int) ([]*entity.Summary, error) {
	return nil, nil
}
func (r *fakeSummaryRepo) Delete(context.Context, int64) error { return nil }
func (r *fakeSummaryRepo) Count(context.Context) (int64, error) {
	return r.count, r.countErr
}
func (r *fakeSummaryRepo) AvgWordCount(context.Context) (float64, error) { return r.avg, nil }

var (
	_ repository.UsageRepository   = (*fakeUsageRepo)(nil)
	_ repository.SummaryRepository = (*fakeSummaryRepo)(nil)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Record(t *testing.T) {
	t.Parallel()

	usage := &fakeUsageRepo{}
	svc := &analytics.Service{Usage: usage, Summaries: &fakeSummaryRepo{}, Logger: discardLogger()}

	svc.Record(context.Background(), "summarize", true)
	svc.Record(context.Background(), "summarize", false)

	require.Len(t, usage.events, 2)
	assert.Equal(t, "summarize", usage.events[0].Endpoint)
	assert.True(t, usage.events[0].Success)
	assert.False(t, usage.events[1].Success)
}

func TestService_Record_SwallowsRepoError(t *testing.T) {
	t.Parallel()

	usage := &fakeUsageRepo{recordErr: errors.New("connection reset")}
	svc := &analytics.Service{Usage: usage, Summaries: &fakeSummaryRepo{}, Logger: discardLogger()}

	// Must not panic or surface the error.
	svc.Record(context.Background(), "summarize", true)
	assert.Empty(t, usage.events)
}

func TestService_Record_InvalidEndpoint(t *testing.T) {
	t.Parallel()

	usage := &fakeUsageRepo{}
	svc := &analytics.Service{Usage: usage, Summaries: &fakeSummaryRepo{}, Logger: discardLogger()}

	svc.Record(context.Background(), "", true)
	assert.Empty(t, usage.events, "invalid events must not reach the repository")
}

func TestService_Stats(t *testing.T) {
	t.Parallel()

	usage := &fakeUsageRepo{stats: repository.UsageStats{TotalCalls: 8, SuccessfulCalls: 6}}
	summaries := &fakeSummaryRepo{count: 5, avg: 42.5}
	svc := &analytics.Service{Usage: usage, Summaries: summaries, Logger: discardLogger()}

	got, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(8), got.TotalCalls)
	assert.Equal(t, int64(6), got.SuccessfulCalls)
	assert.InDelta(t, 75.0, got.SuccessRate, 1e-9)
	assert.Equal(t, int64(5), got.TotalSummaries)
	assert.InDelta(t, 42.5, got.AvgSummaryLength, 1e-9)
}

func TestService_Stats_NoCalls(t *testing.T) {
	t.Parallel()

	svc := &analytics.Service{
		Usage:     &fakeUsageRepo{},
		Summaries: &fakeSummaryRepo{},
		Logger:    discardLogger(),
	}

	got, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.TotalCalls)
	assert.Zero(t, got.SuccessRate)
	assert.Zero(t, got.AvgSummaryLength)
}

func TestService_Stats_UsageError(t *testing.T) {
	t.Parallel()

	svc := &analytics.Service{
		Usage:     &fakeUsageRepo{statsErr: errors.New("connection reset")},
		Summaries: &fakeSummaryRepo{},
		Logger:    discardLogger(),
	}

	_, err := svc.Stats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage stats")
}

func TestService_Stats_CountError(t *testing.T) {
	t.Parallel()

	svc := &analytics.Service{
		Usage:     &fakeUsageRepo{},
		Summaries: &fakeSummaryRepo{countErr: errors.New("connection reset")},
		Logger:    discardLogger(),
	}

	_, err := svc.Stats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count summaries")
}
