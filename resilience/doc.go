// Package resilience provides retry and timeout wrappers for
// computation functions.
//
// The wrappers share the shape of a memoized computation, a
// func(context.Context) (R, error), so they compose with memoization
// directly: wrap the compute function before memoizing it and the
// cached value is the one that survived the retries.
//
// # Patterns
//
//   - Retry: automatically retries failed computations with
//     configurable backoff strategies (exponential, linear, constant).
//
//   - Timeout: bounds a computation to a time limit and returns
//     ErrTimeout when it is exceeded.
//
// # Usage
//
//	retry := resilience.NewRetry[*Profile](resilience.RetryConfig{
//	    MaxAttempts:  3,
//	    InitialDelay: 100 * time.Millisecond,
//	})
//
//	fetch := memo.MemoizeContext1(func(ctx context.Context, id string) (*Profile, error) {
//	    return retry.Execute(ctx, func(ctx context.Context) (*Profile, error) {
//	        return loadProfile(ctx, id)
//	    })
//	})
//
// Because errors are never cached, a computation that exhausts its
// retries leaves no entry behind and a later call starts fresh.
package resilience
