package memo

import "context"

// First1 wraps fn so that only the very first call computes. Every
// later call returns the first call's result regardless of its
// argument, which is accepted and ignored. Because the key is ignored
// the argument type does not need to be comparable.
//
// Concurrency follows Memoize0: callers racing on the first invocation
// share one computation, and a failed first computation is not cached.
func First1[A, R any](fn func(A) (R, error), opts ...Option) func(A) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[unit, R](opts...)
	return func(a A) (R, error) {
		return g.Do(context.Background(), unit{}, func(context.Context) (R, error) {
			return fn(a)
		})
	}
}

// First2 is First1 for two-argument functions.
func First2[A, B, R any](fn func(A, B) (R, error), opts ...Option) func(A, B) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[unit, R](opts...)
	return func(a A, b B) (R, error) {
		return g.Do(context.Background(), unit{}, func(context.Context) (R, error) {
			return fn(a, b)
		})
	}
}

// First3 is First1 for three-argument functions.
func First3[A, B, C, R any](fn func(A, B, C) (R, error), opts ...Option) func(A, B, C) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[unit, R](opts...)
	return func(a A, b B, c C) (R, error) {
		return g.Do(context.Background(), unit{}, func(context.Context) (R, error) {
			return fn(a, b, c)
		})
	}
}

// FirstContext1 is First1 for context-aware functions.
func FirstContext1[A, R any](fn func(context.Context, A) (R, error), opts ...Option) func(context.Context, A) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[unit, R](opts...)
	return func(ctx context.Context, a A) (R, error) {
		return g.Do(ctx, unit{}, func(ctx context.Context) (R, error) {
			return fn(ctx, a)
		})
	}
}

// FirstContext2 is First2 for context-aware functions.
func FirstContext2[A, B, R any](fn func(context.Context, A, B) (R, error), opts ...Option) func(context.Context, A, B) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[unit, R](opts...)
	return func(ctx context.Context, a A, b B) (R, error) {
		return g.Do(ctx, unit{}, func(ctx context.Context) (R, error) {
			return fn(ctx, a, b)
		})
	}
}

// FirstContext3 is First3 for context-aware functions.
func FirstContext3[A, B, C, R any](fn func(context.Context, A, B, C) (R, error), opts ...Option) func(context.Context, A, B, C) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[unit, R](opts...)
	return func(ctx context.Context, a A, b B, c C) (R, error) {
		return g.Do(ctx, unit{}, func(ctx context.Context) (R, error) {
			return fn(ctx, a, b, c)
		})
	}
}
