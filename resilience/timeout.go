package resilience

import (
	"context"
	"time"
)

// TimeoutConfig configures the timeout wrapper.
type TimeoutConfig struct {
	// Timeout is the maximum duration for the computation.
	// Default: 30 seconds
	Timeout time.Duration
}

// Timeout bounds a computation to a time limit. R is the computation's
// result type.
type Timeout[R any] struct {
	config TimeoutConfig
}

// NewTimeout creates a new timeout wrapper.
func NewTimeout[R any](config TimeoutConfig) *Timeout[R] {
	// Apply defaults
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	return &Timeout[R]{config: config}
}

type timeoutResult[R any] struct {
	value R
	err   error
}

// Execute runs the computation with a timeout. On deadline it returns
// the zero value and ErrTimeout; the computation's own context is
// cancelled so it can stop early.
func (t *Timeout[R]) Execute(ctx context.Context, op func(context.Context) (R, error)) (R, error) {
	ctx, cancel := context.WithTimeout(ctx, t.config.Timeout)
	defer cancel()

	done := make(chan timeoutResult[R], 1)

	go func() {
		value, err := op(ctx)
		done <- timeoutResult[R]{value: value, err: err}
	}()

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		var zero R
		if ctx.Err() == context.DeadlineExceeded {
			return zero, ErrTimeout
		}
		return zero, ctx.Err()
	}
}

// Config returns the timeout configuration.
func (t *Timeout[R]) Config() TimeoutConfig {
	return t.config
}

// ExecuteWithTimeout is a convenience function to run a computation
// with a timeout.
func ExecuteWithTimeout[R any](ctx context.Context, timeout time.Duration, op func(context.Context) (R, error)) (R, error) {
	t := NewTimeout[R](TimeoutConfig{Timeout: timeout})
	return t.Execute(ctx, op)
}
