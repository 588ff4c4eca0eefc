package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the service-wide tracer all spans are created from.
var tracer = otel.Tracer("article-summarizer")

// GetTracer returns the service tracer for creating spans around
// summarization stages:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "fetch-article")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
