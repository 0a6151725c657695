package observe

import (
	"context"

	"github.com/jonwraymond/memocall/memo"
)

// Recorder translates memo events into metrics and logs. It
// implements memo.Observer; attach one per memoizer:
//
//	rec, err := observe.NewRecorder(obs, observe.CallMeta{Cache: "users"})
//	fetch := memo.MemoizeContext1(fetchUser, memo.WithObserver(rec))
//
// Contract:
//   - Concurrency: safe for concurrent use.
//   - Errors: best-effort; a Recorder never fails a memoized call.
type Recorder struct {
	meta    CallMeta
	metrics Metrics
	logger  Logger
}

// NewRecorder creates a Recorder drawing instruments from obs.
func NewRecorder(obs Observer, meta CallMeta) (*Recorder, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}
	if meta.Cache == "" {
		return nil, ErrMissingCacheName
	}

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return &Recorder{
		meta:    meta,
		metrics: metrics,
		logger:  obs.Logger().WithCache(meta),
	}, nil
}

// Observe records one memoized call outcome.
func (r *Recorder) Observe(ctx context.Context, info memo.EventInfo) {
	r.metrics.RecordCall(ctx, r.meta, info)

	fields := []Field{
		{Key: "key", Value: info.Key},
		{Key: "wait_ms", Value: float64(info.Wait.Milliseconds())},
	}

	switch info.Event {
	case memo.EventError:
		fields = append(fields,
			Field{Key: "compute_ms", Value: float64(info.Compute.Milliseconds())},
			Field{Key: "error", Value: info.Err.Error()},
		)
		r.logger.Error(ctx, "memoized computation failed", fields...)
	case memo.EventMiss:
		fields = append(fields,
			Field{Key: "compute_ms", Value: float64(info.Compute.Milliseconds())},
		)
		r.logger.Info(ctx, "memoized computation stored", fields...)
	case memo.EventHit:
		r.logger.Debug(ctx, "memoized call hit", fields...)
	}
}

// Ensure Recorder implements memo.Observer
var _ memo.Observer = (*Recorder)(nil)
