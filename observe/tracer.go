package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// CallMeta identifies a memoized call site for telemetry purposes.
type CallMeta struct {
	Cache string // memoizer name (required)
	Op    string // operation label, e.g. "fetch-config" (optional)
}

// SpanName returns the deterministic span name for this call site.
// Format: memo.call.<cache>.<op> or memo.call.<cache>
func (m CallMeta) SpanName() string {
	if m.Op != "" {
		return "memo.call." + m.Cache + "." + m.Op
	}
	return "memo.call." + m.Cache
}

// ID returns the fully qualified call site identifier.
func (m CallMeta) ID() string {
	if m.Op != "" {
		return m.Cache + "." + m.Op
	}
	return m.Cache
}

// Tracer wraps OpenTelemetry tracing with memoizer-specific span
// management. Spans cover the computation only; cache hits produce no
// span.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a computation.
	StartSpan(ctx context.Context, meta CallMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with call site metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta CallMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("cache.name", meta.Cache),
		attribute.Bool("cache.error", false), // Updated in EndSpan on error
	}
	if meta.Op != "" {
		attrs = append(attrs, attribute.String("cache.op", meta.Op))
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	return ctx, span
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("cache.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// TraceCompute wraps a computation so every actual invocation runs
// inside a span. Because the memoizer calls the computation only on a
// miss, hits cost nothing: wrap the function before memoizing it.
//
//	fn := observe.TraceCompute(tracer, meta, fetchRemote)
//	cached := memo.MemoizeContext0(fn)
func TraceCompute[R any](t Tracer, meta CallMeta, fn func(context.Context) (R, error)) func(context.Context) (R, error) {
	return func(ctx context.Context) (R, error) {
		ctx, span := t.StartSpan(ctx, meta)
		result, err := fn(ctx)
		t.EndSpan(span, err)
		return result, err
	}
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// NewNoopTracer creates a no-op tracer.
func NewNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta CallMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
