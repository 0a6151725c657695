// Package memo provides single-flight memoization for function calls.
//
// A memoized function computes its result at most once per distinct
// argument tuple. Concurrent callers with the same arguments share one
// in-flight computation instead of duplicating work; callers with
// different arguments proceed in parallel under independent per-key
// locks. Successful results are cached for the lifetime of the
// memoizer. Errors are never cached, so a failed computation can be
// retried by a later call.
//
// The arity adapters [Memoize0] through [Memoize3] wrap plain blocking
// functions; [MemoizeContext0] through [MemoizeContext3] wrap
// context-aware functions and honor cancellation both while waiting
// for a key's in-flight computation and inside the computation itself.
// [First1] through [First3] cache the result of the very first call
// and ignore all later arguments.
//
// For arbitrary key types, [Group] exposes the underlying engine
// directly. Arguments that are not comparable can be reduced to a
// string key with [HashKey].
package memo
