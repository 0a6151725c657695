package stats

import (
	"fmt"
	"sort"
	"sync"
)

// Registry aggregates named collectors.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: Register rejects nil and duplicate-name collectors.
type Registry struct {
	mu         sync.RWMutex
	collectors map[string]*Collector
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		collectors: make(map[string]*Collector),
	}
}

// Register adds a collector. The collector's name must be unique
// within this registry.
func (r *Registry) Register(c *Collector) error {
	if c == nil {
		return ErrNilCollector
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.collectors[c.name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCollector, c.name)
	}
	r.collectors[c.name] = c
	return nil
}

// Unregister removes a collector by name. Idempotent.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.collectors, name)
}

// Len returns the number of registered collectors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.collectors)
}

// Snapshots returns a snapshot of every registered collector, sorted
// by name.
func (r *Registry) Snapshots() []Snapshot {
	r.mu.RLock()
	snaps := make([]Snapshot, 0, len(r.collectors))
	for _, c := range r.collectors {
		snaps = append(snaps, c.Snapshot())
	}
	r.mu.RUnlock()

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].Name < snaps[j].Name
	})
	return snaps
}
