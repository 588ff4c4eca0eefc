package summary

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"article-summarizer/internal/handler/http/respond"
	"article-summarizer/internal/usecase/analytics"
	"article-summarizer/internal/usecase/history"
)

var errInvalidLimit = errors.New("invalid limit parameter")

// DeleteHandler handles DELETE /history/{id}.
type DeleteHandler struct {
	Svc       *history.Service
	Analytics *analytics.Service
	Logger    *slog.Logger
}

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.Analytics.Record(ctx, "delete", false)
		respond.SafeError(w, http.StatusBadRequest, history.ErrInvalidSummaryID)
		return
	}

	err = h.Svc.Delete(ctx, id)
	h.Analytics.Record(ctx, "delete", err == nil)
	if err != nil {
		switch {
		case errors.Is(err, history.ErrInvalidSummaryID):
			respond.SafeError(w, http.StatusBadRequest, err)
		case errors.Is(err, history.ErrSummaryNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		default:
			h.Logger.Error("failed to delete summary",
				slog.Int64("id", id),
				slog.Any("error", err))
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "summary deleted"})
}
