package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupExporter installs an in-memory exporter and rebinds the package
// tracer to it. The returned function restores a no-op provider.
func setupExporter(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("article-summarizer")
	t.Cleanup(func() {
		_ = tp.ForceFlush(context.Background())
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
		tracer = otel.Tracer("article-summarizer")
	})
	return exporter
}

func serveTraced(status int, method, target string, header http.Header) *httptest.ResponseRecorder {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	req := httptest.NewRequest(method, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func spanAttr(s tracetest.SpanStub, key attribute.Key) (attribute.Value, bool) {
	for _, attr := range s.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestMiddleware_RecordsRequestSpan(t *testing.T) {
	exporter := setupExporter(t)

	serveTraced(http.StatusOK, http.MethodPost, "/summarize", nil)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	span := spans[0]

	if span.Name != "POST /summarize" {
		t.Errorf("span name = %q, want %q", span.Name, "POST /summarize")
	}

	tests := []struct {
		key  attribute.Key
		want string
	}{
		{"http.method", "POST"},
		{"http.path", "/summarize"},
	}
	for _, tt := range tests {
		v, ok := spanAttr(span, tt.key)
		if !ok {
			t.Errorf("attribute %s missing", tt.key)
			continue
		}
		if v.AsString() != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, v.AsString(), tt.want)
		}
	}

	if v, ok := spanAttr(span, "http.status_code"); !ok || v.AsInt64() != 200 {
		t.Errorf("http.status_code = %v (present=%v), want 200", v, ok)
	}
}

func TestMiddleware_SetsTraceIDHeader(t *testing.T) {
	setupExporter(t)

	rr := serveTraced(http.StatusOK, http.MethodGet, "/history", nil)

	traceID := rr.Header().Get("X-Trace-Id")
	if len(traceID) != 32 {
		t.Errorf("X-Trace-Id = %q, want 32 hex chars", traceID)
	}
}

func TestMiddleware_JoinsUpstreamTrace(t *testing.T) {
	exporter := setupExporter(t)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())
	})

	header := http.Header{}
	header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	serveTraced(http.StatusOK, http.MethodGet, "/analytics", header)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	got := spans[0].SpanContext.TraceID().String()
	if got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID = %s, want the propagated upstream ID", got)
	}
}

func TestMiddleware_ErrorAttribute(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantError bool
	}{
		{name: "server error marks span", status: http.StatusInternalServerError, wantError: true},
		{name: "bad gateway marks span", status: http.StatusBadGateway, wantError: true},
		{name: "client error does not", status: http.StatusNotFound, wantError: false},
		{name: "success does not", status: http.StatusOK, wantError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := setupExporter(t)

			serveTraced(tt.status, http.MethodGet, "/history/9", nil)

			spans := exporter.GetSpans()
			if len(spans) != 1 {
				t.Fatalf("got %d spans, want 1", len(spans))
			}
			v, ok := spanAttr(spans[0], "error")
			if got := ok && v.AsBool(); got != tt.wantError {
				t.Errorf("error attribute = %v, want %v", got, tt.wantError)
			}
		})
	}
}
