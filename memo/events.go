package memo

import (
	"context"
	"time"
)

// Event classifies the outcome of a memoized call.
type Event int

const (
	// EventHit is emitted when a call finds a stored result, including
	// callers that waited out another caller's computation.
	EventHit Event = iota
	// EventMiss is emitted when a call computes and stores a result.
	EventMiss
	// EventError is emitted when a call's computation fails. Nothing
	// is stored.
	EventError
)

// String returns the string representation of the event.
func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// EventInfo carries the details of a memoized call for observers.
type EventInfo struct {
	// Event is the call outcome.
	Event Event

	// Cache is the memoizer's name (set via WithName).
	Cache string

	// Key is a display rendering of the cache key.
	Key string

	// Wait is how long the caller waited for the per-key lock.
	Wait time.Duration

	// Compute is how long the computation ran. Zero for hits.
	Compute time.Duration

	// Err is the computation error for EventError, nil otherwise.
	Err error
}

// Observer receives an event for every memoized call.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must be best-effort and must not panic.
// - Ownership: Observe is called on the caller's goroutine while the
//   per-key lock is still held; it must return quickly.
type Observer interface {
	Observe(ctx context.Context, info EventInfo)
}
