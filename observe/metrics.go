package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/memocall/memo"
)

// Metrics records call metrics for a memoizer.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly; recording is non-blocking.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCall records one memoized call outcome.
	RecordCall(ctx context.Context, meta CallMeta, info memo.EventInfo)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter       metric.Meter
	totalCount  metric.Int64Counter
	hitCount    metric.Int64Counter
	missCount   metric.Int64Counter
	errorCount  metric.Int64Counter
	computeHist metric.Float64Histogram
	waitHist    metric.Float64Histogram
}

// NewMetrics creates a Metrics instance with the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"memo.calls.total",
		metric.WithDescription("Total number of memoized calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	hitCount, err := meter.Int64Counter(
		"memo.calls.hits",
		metric.WithDescription("Calls served from the result store"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	missCount, err := meter.Int64Counter(
		"memo.calls.misses",
		metric.WithDescription("Calls that computed and stored a result"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"memo.calls.errors",
		metric.WithDescription("Calls whose computation failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	computeHist, err := meter.Float64Histogram(
		"memo.compute.duration_ms",
		metric.WithDescription("Computation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	waitHist, err := meter.Float64Histogram(
		"memo.wait.duration_ms",
		metric.WithDescription("Time spent waiting for a key's in-flight computation in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:       meter,
		totalCount:  totalCount,
		hitCount:    hitCount,
		missCount:   missCount,
		errorCount:  errorCount,
		computeHist: computeHist,
		waitHist:    waitHist,
	}, nil
}

// RecordCall records metrics for one memoized call.
func (m *metricsImpl) RecordCall(ctx context.Context, meta CallMeta, info memo.EventInfo) {
	attrs := []attribute.KeyValue{
		attribute.String("cache.name", meta.Cache),
	}
	if meta.Op != "" {
		attrs = append(attrs, attribute.String("cache.op", meta.Op))
	}

	opt := metric.WithAttributes(attrs...)

	m.totalCount.Add(ctx, 1, opt)
	m.waitHist.Record(ctx, float64(info.Wait.Milliseconds()), opt)

	switch info.Event {
	case memo.EventHit:
		m.hitCount.Add(ctx, 1, opt)
	case memo.EventMiss:
		m.missCount.Add(ctx, 1, opt)
		m.computeHist.Record(ctx, float64(info.Compute.Milliseconds()), opt)
	case memo.EventError:
		m.errorCount.Add(ctx, 1, opt)
		m.computeHist.Record(ctx, float64(info.Compute.Milliseconds()), opt)
	}
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordCall(ctx context.Context, meta CallMeta, info memo.EventInfo) {}
