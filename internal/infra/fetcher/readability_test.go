package fetcher_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"article-summarizer/internal/infra/fetcher"
	"article-summarizer/internal/usecase/summarize"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Gopher Habits</title>
	<meta property="og:title" content="Gopher Habits, Explained">
</head>
<body>
	<article>
		<h1>Gopher Habits</h1>
		<p>Gophers dig elaborate tunnels beneath the prairie and line them with grass.</p>
		<p>They store food in side chambers and rarely surface during daylight.</p>
		<p>Farmers dislike the mounds gophers leave behind in cultivated fields.</p>
	</article>
</body>
</html>`

// testConfig disables the SSRF check so httptest servers on loopback are
// reachable.
func testConfig() fetcher.Config {
	cfg := fetcher.DefaultConfig()
	cfg.DenyPrivateIPs = false
	cfg.Burst = 50
	return cfg
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "ArticleSummarizerBot/1.0" {
			t.Errorf("unexpected User-Agent %q", got)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	f := fetcher.NewReadabilityFetcher(testConfig())

	article, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if article.Title != "Gopher Habits, Explained" {
		t.Errorf("expected og:title to win, got %q", article.Title)
	}
	if !strings.Contains(article.Text, "elaborate tunnels") {
		t.Errorf("expected extracted text to contain article body, got: %q", article.Text)
	}
	if strings.Contains(article.Text, "<p>") {
		t.Errorf("expected plain text without markup, got: %q", article.Text)
	}
}

func TestFetch_TitleFallback(t *testing.T) {
	// No og:title; the <title> element should be used.
	html := strings.Replace(articleHTML,
		`<meta property="og:title" content="Gopher Habits, Explained">`, "", 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	defer server.Close()

	f := fetcher.NewReadabilityFetcher(testConfig())

	article, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if article.Title != "Gopher Habits" {
		t.Errorf("expected title element fallback, got %q", article.Title)
	}
}

func TestFetch_InvalidURL(t *testing.T) {
	f := fetcher.NewReadabilityFetcher(testConfig())

	tests := []struct {
		name string
		url  string
	}{
		{"malformed", "not-a-valid-url"},
		{"empty", ""},
		{"file scheme", "file:///etc/passwd"},
		{"ftp scheme", "ftp://ftp.example.com/file.txt"},
		{"javascript scheme", "javascript:alert(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Fetch(context.Background(), tt.url)
			if !errors.Is(err, summarize.ErrInvalidURL) {
				t.Errorf("expected ErrInvalidURL, got: %v", err)
			}
		})
	}
}

func TestFetch_BlockedAddresses(t *testing.T) {
	cfg := fetcher.DefaultConfig()
	cfg.DenyPrivateIPs = true
	f := fetcher.NewReadabilityFetcher(cfg)

	tests := []struct {
		name string
		url  string
	}{
		{"localhost", "http://localhost/article"},
		{"loopback", "http://127.0.0.1:6379/"},
		{"private 10.x", "http://10.0.0.1/article"},
		{"private 192.168.x", "http://192.168.1.1/article"},
		{"private 172.16.x", "http://172.16.0.1/article"},
		{"cloud metadata", "http://169.254.169.254/latest/meta-data/"},
		{"ipv6 loopback", "http://[::1]/article"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Fetch(context.Background(), tt.url)
			if !errors.Is(err, summarize.ErrInvalidURL) {
				t.Errorf("expected ErrInvalidURL for %s, got: %v", tt.url, err)
			}
		})
	}
}

func TestFetch_HTTPError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError} {
		t.Run(fmt.Sprintf("HTTP %d", status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			f := fetcher.NewReadabilityFetcher(testConfig())

			_, err := f.Fetch(context.Background(), server.URL)
			if !errors.Is(err, summarize.ErrExtractFailed) {
				t.Errorf("expected ErrExtractFailed, got: %v", err)
			}
			if !strings.Contains(err.Error(), fmt.Sprintf("%d", status)) {
				t.Errorf("expected status code in error, got: %v", err)
			}
		})
	}
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		_, _ = w.Write([]byte("too late"))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Timeout = 300 * time.Millisecond
	f := fetcher.NewReadabilityFetcher(cfg)

	_, err := f.Fetch(context.Background(), server.URL)
	if !errors.Is(err, summarize.ErrFetchTimeout) {
		t.Errorf("expected ErrFetchTimeout, got: %v", err)
	}
}

func TestFetch_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte("response"))
	}))
	defer server.Close()

	f := fetcher.NewReadabilityFetcher(testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx, server.URL)
	if err == nil {
		t.Fatal("expected error from cancelled context, got nil")
	}
	if !strings.Contains(err.Error(), "cancel") && !strings.Contains(err.Error(), "context") {
		t.Errorf("expected cancellation error, got: %v", err)
	}
}

func TestFetch_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		body := fmt.Sprintf("<html><body><article><p>%s</p></article></body></html>",
			strings.Repeat("x", 64*1024))
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.MaxBodySize = 32 * 1024
	f := fetcher.NewReadabilityFetcher(cfg)

	_, err := f.Fetch(context.Background(), server.URL)
	if !errors.Is(err, summarize.ErrBodyTooLarge) {
		t.Errorf("expected ErrBodyTooLarge, got: %v", err)
	}
}

func TestFetch_TooManyRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.String(), http.StatusFound)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.MaxRedirects = 3
	f := fetcher.NewReadabilityFetcher(cfg)

	_, err := f.Fetch(context.Background(), server.URL)
	if !errors.Is(err, summarize.ErrTooManyRedirects) {
		t.Errorf("expected ErrTooManyRedirects, got: %v", err)
	}
}

func TestFetch_FollowsRedirect(t *testing.T) {
	finalServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer finalServer.Close()

	initialServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, finalServer.URL, http.StatusFound)
	}))
	defer initialServer.Close()

	f := fetcher.NewReadabilityFetcher(testConfig())

	article, err := f.Fetch(context.Background(), initialServer.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.Contains(article.Text, "elaborate tunnels") {
		t.Errorf("expected content from final destination, got: %q", article.Text)
	}
}

func TestFetch_NoReadableContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html><html><head><title>Empty</title></head><body></body></html>`))
	}))
	defer server.Close()

	f := fetcher.NewReadabilityFetcher(testConfig())

	_, err := f.Fetch(context.Background(), server.URL)
	if !errors.Is(err, summarize.ErrExtractFailed) {
		t.Errorf("expected ErrExtractFailed for empty page, got: %v", err)
	}
}

func TestFetch_CircuitBreakerOpens(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := fetcher.NewReadabilityFetcher(testConfig())

	// MinRequests is 5 with a 0.6 failure threshold; five straight failures
	// open the circuit.
	for i := 0; i < 5; i++ {
		if _, err := f.Fetch(context.Background(), server.URL); err == nil {
			t.Fatalf("request %d: expected error, got nil", i)
		}
	}

	hitsBefore := hits
	_, err := f.Fetch(context.Background(), server.URL)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected ErrOpenState after repeated failures, got: %v", err)
	}
	if hits != hitsBefore {
		t.Error("request reached the server while the circuit was open")
	}
}
