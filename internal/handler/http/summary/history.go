package summary

import (
	"log/slog"
	"net/http"
	"strconv"

	"article-summarizer/internal/handler/http/respond"
	"article-summarizer/internal/usecase/analytics"
	"article-summarizer/internal/usecase/history"
)

// HistoryHandler handles GET /history. The optional "limit" query parameter
// caps the number of entries returned, newest first.
type HistoryHandler struct {
	Svc       *history.Service
	Analytics *analytics.Service
	Logger    *slog.Logger
}

func (h HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.Analytics.Record(ctx, "history", false)
			respond.SafeError(w, http.StatusBadRequest, errInvalidLimit)
			return
		}
		limit = parsed
	}

	summaries, err := h.Svc.Recent(ctx, limit)
	h.Analytics.Record(ctx, "history", err == nil)
	if err != nil {
		h.Logger.Error("failed to list history", slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]HistoryDTO, 0, len(summaries))
	for _, s := range summaries {
		dtos = append(dtos, historyDTO(s))
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"history": dtos,
		"count":   len(dtos),
	})
}
