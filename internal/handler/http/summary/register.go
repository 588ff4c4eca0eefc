package summary

import (
	"log/slog"
	"net/http"

	"article-summarizer/internal/usecase/analytics"
	"article-summarizer/internal/usecase/history"
	"article-summarizer/internal/usecase/summarize"
)

// Register wires the summarization endpoints onto the given mux.
func Register(mux *http.ServeMux, sumSvc *summarize.Service, histSvc *history.Service, anaSvc *analytics.Service, logger *slog.Logger) {
	mux.Handle("POST   /summarize", SummarizeHandler{
		Svc:       sumSvc,
		Analytics: anaSvc,
		Logger:    logger,
	})
	mux.Handle("GET    /history", HistoryHandler{
		Svc:       histSvc,
		Analytics: anaSvc,
		Logger:    logger,
	})
	mux.Handle("DELETE /history/{id}", DeleteHandler{
		Svc:       histSvc,
		Analytics: anaSvc,
		Logger:    logger,
	})
	mux.Handle("GET    /analytics", AnalyticsHandler{
		Svc:    anaSvc,
		Logger: logger,
	})
}
