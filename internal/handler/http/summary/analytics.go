package summary

import (
	"fmt"
	"log/slog"
	"net/http"

	"article-summarizer/internal/handler/http/respond"
	"article-summarizer/internal/usecase/analytics"
)

// AnalyticsHandler handles GET /analytics.
type AnalyticsHandler struct {
	Svc    *analytics.Service
	Logger *slog.Logger
}

func (h AnalyticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		h.Logger.Error("failed to aggregate analytics", slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, AnalyticsResponse{
		TotalCalls:       stats.TotalCalls,
		SuccessfulCalls:  stats.SuccessfulCalls,
		SuccessRate:      fmt.Sprintf("%.2f%%", stats.SuccessRate),
		TotalSummaries:   stats.TotalSummaries,
		AvgSummaryLength: stats.AvgSummaryLength,
	})
}
