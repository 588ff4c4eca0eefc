package summarize

import "context"

// ExtractedArticle is the plain-text result of fetching an article URL.
type ExtractedArticle struct {
	Title string
	Text  string
}

// ArticleFetcher acquires article text from a URL. The pipeline itself never
// performs network access; any fetch failure is reported to the caller as
// "no input available".
type ArticleFetcher interface {
	Fetch(ctx context.Context, url string) (*ExtractedArticle, error)
}
