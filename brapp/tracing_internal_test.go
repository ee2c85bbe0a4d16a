package brapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/advdv/brender"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx/fxtest"
)

func TestNewExporter(t *testing.T) {
	t.Run("stdout exporter", func(t *testing.T) {
		exp, err := newExporter("stdout")
		require.NoError(t, err)
		require.NotNil(t, exp)
	})

	t.Run("empty defaults to stdout", func(t *testing.T) {
		exp, err := newExporter("")
		require.NoError(t, err)
		require.NotNil(t, exp)
	})

	t.Run("none has no exporter", func(t *testing.T) {
		exp, err := newExporter("none")
		require.NoError(t, err)
		require.Nil(t, exp)
	})

	t.Run("unsupported exporter returns error", func(t *testing.T) {
		_, err := newExporter("invalid")
		require.EqualError(t, err, `unsupported BR_OTEL_EXPORTER: "invalid" (supported: stdout, none)`)
	})
}

func TestNewResource(t *testing.T) {
	res := newResource("my-service")

	found := false
	for _, attr := range res.Attributes() {
		if string(attr.Key) == "service.name" && attr.Value.AsString() == "my-service" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected service.name attribute in resource")
}

func TestNewTracerProvider(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	tp, err := NewTracerProvider(lc, testEnv{otelExp: "none"})
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	lc.RequireStart()
	lc.RequireStop()
}

func TestWithTracing(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	var sawSpan bool
	h := withTracing(tp, NewPropagator(), "test", "/health")(http.HandlerFunc(
		func(_ http.ResponseWriter, r *http.Request) {
			sawSpan = trace.SpanFromContext(r.Context()).SpanContext().IsValid()
		}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pages/1", nil))
	assert.True(t, sawSpan)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.False(t, sawSpan)

	require.Len(t, rec.Ended(), 1)
	assert.Equal(t, "GET /pages/1", rec.Ended()[0].Name())
}

func TestSpanLogger(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	ctx, span := tp.Tracer("test").Start(context.Background(), "render")
	logs := brender.NewTestLogger(t)

	site := brender.Site{Func: "pages.Home", File: "home.go", Line: 7}
	spanLogger{Logger: logs, ctx: ctx}.LogRenderError(site, errors.New("boom"))
	span.End()

	assert.EqualValues(t, 1, logs.NumLogRenderError)

	require.Len(t, rec.Ended(), 1)
	events := rec.Ended()[0].Events()
	require.Len(t, events, 2)

	assert.Equal(t, "render.failed", events[0].Name)
	assert.Contains(t, events[0].Attributes, semconv.CodeFilepath("home.go"))
	assert.Contains(t, events[0].Attributes, semconv.CodeLineNumber(7))
	assert.Contains(t, events[0].Attributes, semconv.CodeFunction("pages.Home"))
	assert.Equal(t, "exception", events[1].Name)
}
