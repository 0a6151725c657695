package stats

import (
	"context"
	"sync/atomic"

	"github.com/jonwraymond/memocall/memo"
)

// Snapshot is a point-in-time view of one memoizer's counters.
type Snapshot struct {
	// Name is the collector name.
	Name string `json:"name"`

	// Hits counts calls served from the result store.
	Hits uint64 `json:"hits"`

	// Misses counts calls that computed and stored a result.
	Misses uint64 `json:"misses"`

	// Errors counts calls whose computation failed.
	Errors uint64 `json:"errors"`
}

// Calls returns the total number of observed calls.
func (s Snapshot) Calls() uint64 {
	return s.Hits + s.Misses + s.Errors
}

// HitRate returns hits as a fraction of all calls, or 0 when no calls
// have been observed.
func (s Snapshot) HitRate() float64 {
	calls := s.Calls()
	if calls == 0 {
		return 0
	}
	return float64(s.Hits) / float64(calls)
}

// Collector counts memoized call outcomes. It implements
// memo.Observer; attach it with memo.WithObserver.
//
// Contract:
// - Concurrency: safe for concurrent use; counters are atomic.
// - Errors: Observe never fails and never panics.
type Collector struct {
	name   string
	hits   atomic.Uint64
	misses atomic.Uint64
	errors atomic.Uint64
}

// NewCollector creates a named collector.
func NewCollector(name string) *Collector {
	return &Collector{name: name}
}

// Name returns the collector name.
func (c *Collector) Name() string {
	return c.name
}

// Observe tallies one memoized call outcome.
func (c *Collector) Observe(_ context.Context, info memo.EventInfo) {
	switch info.Event {
	case memo.EventHit:
		c.hits.Add(1)
	case memo.EventMiss:
		c.misses.Add(1)
	case memo.EventError:
		c.errors.Add(1)
	}
}

// Snapshot returns the current counter values.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Name:   c.name,
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Errors: c.errors.Load(),
	}
}

// Ensure Collector implements memo.Observer
var _ memo.Observer = (*Collector)(nil)
