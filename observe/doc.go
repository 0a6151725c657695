// Package observe provides observability for memoized calls.
//
// It is a pure instrumentation library: no caching, no transport, no
// I/O beyond exporter setup. Consumers build an [Observer], derive a
// [Recorder] for each memoizer, and attach it with memo.WithObserver.
package observe
