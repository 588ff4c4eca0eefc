package summary

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"

	"article-summarizer/internal/handler/http/requestid"
	"article-summarizer/internal/handler/http/respond"
	"article-summarizer/internal/summarizer"
	"article-summarizer/internal/usecase/analytics"
	"article-summarizer/internal/usecase/summarize"
)

// defaultSentenceCount applies when the request omits "sentences".
const defaultSentenceCount = 5

// SummarizeHandler handles POST /summarize.
type SummarizeHandler struct {
	Svc       *summarize.Service
	Analytics *analytics.Service
	Logger    *slog.Logger
}

func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := requestid.FromContext(ctx)

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Analytics.Record(ctx, "summarize", false)
		respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON body: %w", err))
		return
	}

	method, err := summarizer.ParseMethod(req.Method)
	if err != nil {
		h.Analytics.Record(ctx, "summarize", false)
		respond.SafeErrorV2(w, http.StatusBadRequest, summarizeError(err))
		return
	}

	sentences := defaultSentenceCount
	if req.Sentences != nil {
		sentences = *req.Sentences
	}

	out, err := h.Svc.Summarize(ctx, summarize.Input{
		URL:           req.URL,
		Text:          req.Text,
		Method:        method,
		SentenceCount: sentences,
	})
	h.Analytics.Record(ctx, "summarize", err == nil)
	if err != nil {
		h.Logger.Warn("summarize request failed",
			slog.String("request_id", reqID),
			slog.Bool("from_url", req.URL != ""),
			slog.Any("error", err))
		respond.SafeErrorV2(w, http.StatusInternalServerError, summarizeError(err))
		return
	}

	resp := SummarizeResponse{
		Summary:        out.Result.SummaryText,
		Source:         string(out.Source),
		Method:         out.Method.String(),
		Title:          out.Title,
		WordCount:      out.Result.WordCount,
		OriginalLength: out.Result.OriginalLength,
		SentencesUsed:  out.Result.SentencesUsed,
	}
	if out.Stored != nil {
		resp.ID = out.Stored.ID
	}

	h.Logger.Info("summary created",
		slog.String("request_id", reqID),
		slog.String("source", resp.Source),
		slog.Int("word_count", resp.WordCount),
		slog.Int("sentences_used", resp.SentencesUsed))

	respond.JSON(w, http.StatusOK, resp)
}

// summarizeError maps use case failures onto HTTP status codes. Input
// problems are 400, upstream fetch problems are 502, the rest stay 500.
func summarizeError(err error) error {
	switch {
	case errors.Is(err, summarize.ErrNoInputProvided),
		errors.Is(err, summarize.ErrInvalidSentenceCount),
		errors.Is(err, summarize.ErrTextTooShort),
		errors.Is(err, summarize.ErrInvalidURL),
		errors.Is(err, summarizer.ErrUnknownMethod):
		return respond.NewAppError(http.StatusBadRequest, userMessage(err), err)

	case errors.Is(err, summarize.ErrFetchTimeout),
		errors.Is(err, summarize.ErrTooManyRedirects),
		errors.Is(err, summarize.ErrBodyTooLarge),
		errors.Is(err, summarize.ErrExtractFailed):
		return respond.NewAppError(http.StatusBadGateway, "could not fetch article content", err)

	case errors.Is(err, gobreaker.ErrOpenState):
		return respond.NewAppError(http.StatusServiceUnavailable, "article fetching temporarily unavailable", err)

	default:
		return err
	}
}

// userMessage surfaces the sentinel message without internal wrapping.
func userMessage(err error) string {
	for _, sentinel := range []error{
		summarize.ErrNoInputProvided,
		summarize.ErrInvalidSentenceCount,
		summarize.ErrTextTooShort,
		summarize.ErrInvalidURL,
		summarizer.ErrUnknownMethod,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
