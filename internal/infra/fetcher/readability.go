package fetcher

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/time/rate"

	"article-summarizer/internal/observability/metrics"
	"article-summarizer/internal/resilience/circuitbreaker"
	"article-summarizer/internal/usecase/summarize"
)

// ReadabilityFetcher fetches article HTML and extracts readable text using
// the Mozilla Readability algorithm. Every URL (including each redirect hop)
// is validated against SSRF, response bodies are size-limited, outbound
// requests share a rate limiter, and failures feed a circuit breaker.
//
// Safe for concurrent use.
type ReadabilityFetcher struct {
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
	limiter *rate.Limiter
	config  Config
}

var _ summarize.ArticleFetcher = (*ReadabilityFetcher)(nil)

// NewReadabilityFetcher creates a fetcher with the given configuration.
func NewReadabilityFetcher(cfg Config) *ReadabilityFetcher {
	f := &ReadabilityFetcher{
		breaker: circuitbreaker.New(circuitbreaker.ArticleFetchConfig()),
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		config:  cfg,
	}

	f.client = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", summarize.ErrTooManyRedirects, len(via))
			}
			// Each redirect target gets the same SSRF check as the original.
			if err := validateURL(req.URL.String(), f.config.DenyPrivateIPs); err != nil {
				return err
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the article at urlStr and extracts its title and plain
// text. It implements summarize.ArticleFetcher.
func (f *ReadabilityFetcher) Fetch(ctx context.Context, urlStr string) (*summarize.ExtractedArticle, error) {
	if err := validateURL(urlStr, f.config.DenyPrivateIPs); err != nil {
		return nil, err
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	result, err := f.breaker.Execute(func() (interface{}, error) {
		return f.doFetch(ctx, urlStr)
	})
	if err != nil {
		metrics.RecordContentFetchFailed(time.Since(start))
		return nil, err
	}

	article := result.(*summarize.ExtractedArticle)
	metrics.RecordContentFetchSuccess(time.Since(start), len(article.Text))
	return article, nil
}

func (f *ReadabilityFetcher) doFetch(ctx context.Context, urlStr string) (interface{}, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", summarize.ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: request exceeded %v", summarize.ErrFetchTimeout, f.config.Timeout)
		}
		// Redirect-check errors arrive wrapped in url.Error; unwrap so the
		// caller sees the sentinel.
		if urlErr, ok := err.(*url.Error); ok && urlErr.Err != nil {
			return nil, urlErr.Err
		}
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", summarize.ErrExtractFailed, resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, f.config.MaxBodySize+1)
	htmlBytes, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(htmlBytes)) > f.config.MaxBodySize {
		return nil, fmt.Errorf("%w: response exceeds %d bytes",
			summarize.ErrBodyTooLarge, f.config.MaxBodySize)
	}

	// The final URL may differ from the requested one after redirects;
	// Readability uses it to resolve relative links.
	finalURL, _ := url.Parse(urlStr)
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL
	}

	article, err := readability.FromReader(bytes.NewReader(htmlBytes), finalURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", summarize.ErrExtractFailed, err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, fmt.Errorf("%w: no readable content found", summarize.ErrExtractFailed)
	}

	title := extractTitle(htmlBytes)
	if title == "" {
		title = strings.TrimSpace(article.Title)
	}
	if title == "" {
		slog.Debug("article has no discoverable title", slog.String("url", urlStr))
	}

	return &summarize.ExtractedArticle{Title: title, Text: text}, nil
}

// extractTitle pulls a title from the raw HTML, preferring og:title over the
// <title> element. Returns "" when neither is present.
func extractTitle(htmlBytes []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return ""
	}

	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if t := strings.TrimSpace(og); t != "" {
			return t
		}
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}
