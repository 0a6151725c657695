package memo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// result is the tagged "present" wrapper for stored values. Storing
// the wrapper rather than the bare value lets a nil or zero result be
// cached like any other: presence is tracked by the map entry, not by
// the value itself.
type result[R any] struct {
	value R
}

// Group is a single-flight memoization engine keyed by K.
//
// Contract:
//   - Concurrency: safe for concurrent use. Callers with the same key
//     serialize on a per-key lock; callers with different keys only
//     contend briefly on the lock registry.
//   - Context: Do honors cancellation while waiting for a key's lock
//     and passes ctx through to the computation.
//   - Errors: computation errors are propagated unchanged and never
//     cached; the key remains usable for future attempts.
//
// Each Group owns its own lock registry and result store. Results are
// written at most once per key and are never evicted.
type Group[K comparable, R any] struct {
	name     string
	observer Observer

	// registry guards locks. It is held only long enough to look up
	// or insert a per-key lock, never across a computation.
	registry sync.Mutex
	locks    map[K]*semaphore.Weighted

	storeMu sync.RWMutex
	results map[K]result[R]
}

// NewGroup creates an empty Group.
func NewGroup[K comparable, R any](opts ...Option) *Group[K, R] {
	cfg := applyOptions(opts)
	return &Group[K, R]{
		name:     cfg.name,
		observer: cfg.observer,
		locks:    make(map[K]*semaphore.Weighted),
		results:  make(map[K]result[R]),
	}
}

// Do returns the cached result for key, computing it if necessary.
//
// The first caller for a key runs compute while holding the key's
// lock; concurrent callers for the same key block until it finishes
// and then read the stored result without invoking compute. If
// compute fails nothing is stored, the error is returned to this
// caller only, and the next caller for the key attempts compute
// again.
//
// If ctx is cancelled while waiting for the key's lock, Do returns
// ctx.Err() without invoking compute.
func (g *Group[K, R]) Do(ctx context.Context, key K, compute func(context.Context) (R, error)) (R, error) {
	lock := g.keyLock(key)

	waitStart := time.Now()
	if err := lock.Acquire(ctx, 1); err != nil {
		var zero R
		return zero, err
	}
	defer lock.Release(1)
	wait := time.Since(waitStart)

	// Double-check under the per-key lock: another caller may have
	// stored the result while we waited.
	if res, ok := g.load(key); ok {
		g.emit(ctx, EventInfo{Event: EventHit, Cache: g.name, Key: keyString(key), Wait: wait})
		return res.value, nil
	}

	start := time.Now()
	value, err := compute(ctx)
	elapsed := time.Since(start)
	if err != nil {
		g.emit(ctx, EventInfo{Event: EventError, Cache: g.name, Key: keyString(key), Wait: wait, Compute: elapsed, Err: err})
		var zero R
		return zero, err
	}

	g.store(key, value)
	g.emit(ctx, EventInfo{Event: EventMiss, Cache: g.name, Key: keyString(key), Wait: wait, Compute: elapsed})
	return value, nil
}

// Len returns the number of stored results.
func (g *Group[K, R]) Len() int {
	g.storeMu.RLock()
	defer g.storeMu.RUnlock()
	return len(g.results)
}

// keyLock returns the lock for key, creating it on first observation.
// Two callers racing on an unseen key both observe the same lock.
func (g *Group[K, R]) keyLock(key K) *semaphore.Weighted {
	g.registry.Lock()
	defer g.registry.Unlock()

	lock, ok := g.locks[key]
	if !ok {
		// Weight-1 semaphore: a mutex whose Acquire honors ctx.
		lock = semaphore.NewWeighted(1)
		g.locks[key] = lock
	}
	return lock
}

func (g *Group[K, R]) load(key K) (result[R], bool) {
	g.storeMu.RLock()
	defer g.storeMu.RUnlock()
	res, ok := g.results[key]
	return res, ok
}

func (g *Group[K, R]) store(key K, value R) {
	g.storeMu.Lock()
	defer g.storeMu.Unlock()
	g.results[key] = result[R]{value: value}
}

func (g *Group[K, R]) emit(ctx context.Context, info EventInfo) {
	if g.observer == nil {
		return
	}
	g.observer.Observe(ctx, info)
}

// keyString renders a key for event reporting. It is never used for
// identity.
func keyString(key any) string {
	return fmt.Sprint(key)
}
