// Package tracing provides OpenTelemetry tracing integration.
//
// The HTTP middleware extracts W3C trace context from incoming requests,
// opens a server span per request, and echoes the trace ID back in the
// X-Trace-Id response header. Span export is configured by the embedding
// process; without an exporter the middleware is a cheap no-op.
//
// Example usage:
//
//	import "article-summarizer/internal/observability/tracing"
//
//	mux := http.NewServeMux()
//	handler := tracing.Middleware(mux)
//
//	func summarize(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "summarize")
//	    defer span.End()
//	    // ...
//	}
package tracing
