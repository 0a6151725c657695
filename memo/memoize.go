package memo

import "context"

// Memoize0 wraps a zero-argument function so it computes at most once.
// Concurrent callers share the single in-flight computation. An error
// result is not cached; the next call retries fn.
//
// Memoize0 panics with ErrNilFunc if fn is nil. The same applies to
// every other memoizer constructor in this package.
func Memoize0[R any](fn func() (R, error), opts ...Option) func() (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[unit, R](opts...)
	return func() (R, error) {
		return g.Do(context.Background(), unit{}, func(context.Context) (R, error) {
			return fn()
		})
	}
}

// Memoize1 wraps a one-argument function so it computes at most once
// per distinct argument. Calls with different arguments proceed in
// parallel; calls with the same argument share one computation.
func Memoize1[A comparable, R any](fn func(A) (R, error), opts ...Option) func(A) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[A, R](opts...)
	return func(a A) (R, error) {
		return g.Do(context.Background(), a, func(context.Context) (R, error) {
			return fn(a)
		})
	}
}

// Memoize2 wraps a two-argument function, keyed by the ordered
// argument pair: (a, b) and (b, a) are distinct keys unless a == b.
func Memoize2[A, B comparable, R any](fn func(A, B) (R, error), opts ...Option) func(A, B) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[Pair[A, B], R](opts...)
	return func(a A, b B) (R, error) {
		return g.Do(context.Background(), PairOf(a, b), func(context.Context) (R, error) {
			return fn(a, b)
		})
	}
}

// Memoize3 wraps a three-argument function, keyed by the ordered
// argument triple.
func Memoize3[A, B, C comparable, R any](fn func(A, B, C) (R, error), opts ...Option) func(A, B, C) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[Triple[A, B, C], R](opts...)
	return func(a A, b B, c C) (R, error) {
		return g.Do(context.Background(), TripleOf(a, b, c), func(context.Context) (R, error) {
			return fn(a, b, c)
		})
	}
}

// MemoizeContext0 is Memoize0 for context-aware functions. The caller's
// context governs both waiting for the in-flight computation and the
// computation itself; a caller cancelled while waiting returns
// ctx.Err() without invoking fn.
func MemoizeContext0[R any](fn func(context.Context) (R, error), opts ...Option) func(context.Context) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[unit, R](opts...)
	return func(ctx context.Context) (R, error) {
		return g.Do(ctx, unit{}, fn)
	}
}

// MemoizeContext1 is Memoize1 for context-aware functions.
func MemoizeContext1[A comparable, R any](fn func(context.Context, A) (R, error), opts ...Option) func(context.Context, A) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[A, R](opts...)
	return func(ctx context.Context, a A) (R, error) {
		return g.Do(ctx, a, func(ctx context.Context) (R, error) {
			return fn(ctx, a)
		})
	}
}

// MemoizeContext2 is Memoize2 for context-aware functions.
func MemoizeContext2[A, B comparable, R any](fn func(context.Context, A, B) (R, error), opts ...Option) func(context.Context, A, B) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[Pair[A, B], R](opts...)
	return func(ctx context.Context, a A, b B) (R, error) {
		return g.Do(ctx, PairOf(a, b), func(ctx context.Context) (R, error) {
			return fn(ctx, a, b)
		})
	}
}

// MemoizeContext3 is Memoize3 for context-aware functions.
func MemoizeContext3[A, B, C comparable, R any](fn func(context.Context, A, B, C) (R, error), opts ...Option) func(context.Context, A, B, C) (R, error) {
	mustFunc(fn == nil)
	g := NewGroup[Triple[A, B, C], R](opts...)
	return func(ctx context.Context, a A, b B, c C) (R, error) {
		return g.Do(ctx, TripleOf(a, b, c), func(ctx context.Context) (R, error) {
			return fn(ctx, a, b, c)
		})
	}
}

func mustFunc(isNil bool) {
	if isNil {
		panic(ErrNilFunc)
	}
}
