package stats

import (
	"context"
	"sync"
	"testing"

	"github.com/jonwraymond/memocall/memo"
)

func observeN(c *Collector, event memo.Event, n int) {
	ctx := context.Background()
	for i := 0; i < n; i++ {
		c.Observe(ctx, memo.EventInfo{Event: event, Cache: c.Name()})
	}
}

func TestCollector_Snapshot(t *testing.T) {
	c := NewCollector("users")

	observeN(c, memo.EventMiss, 3)
	observeN(c, memo.EventHit, 12)
	observeN(c, memo.EventError, 1)

	snap := c.Snapshot()
	if snap.Name != "users" {
		t.Errorf("Name = %q, want %q", snap.Name, "users")
	}
	if snap.Hits != 12 {
		t.Errorf("Hits = %d, want 12", snap.Hits)
	}
	if snap.Misses != 3 {
		t.Errorf("Misses = %d, want 3", snap.Misses)
	}
	if snap.Errors != 1 {
		t.Errorf("Errors = %d, want 1", snap.Errors)
	}
}

func TestSnapshot_Calls(t *testing.T) {
	snap := Snapshot{Hits: 7, Misses: 2, Errors: 1}
	if got := snap.Calls(); got != 10 {
		t.Errorf("Calls() = %d, want 10", got)
	}
}

func TestSnapshot_HitRate(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want float64
	}{
		{"no calls", Snapshot{}, 0},
		{"all hits", Snapshot{Hits: 4}, 1},
		{"half hits", Snapshot{Hits: 5, Misses: 5}, 0.5},
		{"errors count as calls", Snapshot{Hits: 1, Misses: 1, Errors: 2}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.HitRate(); got != tt.want {
				t.Errorf("HitRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollector_ConcurrentObserve(t *testing.T) {
	c := NewCollector("concurrent")

	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			observeN(c, memo.EventHit, perWorker)
		}()
	}
	wg.Wait()

	if got := c.Snapshot().Hits; got != workers*perWorker {
		t.Errorf("Hits = %d, want %d", got, workers*perWorker)
	}
}

func TestCollector_WithGroup(t *testing.T) {
	c := NewCollector("squares")
	square := memo.Memoize1(func(x int) (int, error) {
		return x * x, nil
	}, memo.WithName("squares"), memo.WithObserver(c))

	for i := 0; i < 3; i++ {
		if got, err := square(4); err != nil || got != 16 {
			t.Fatalf("square(4) = %d, %v, want 16, nil", got, err)
		}
	}

	snap := c.Snapshot()
	if snap.Misses != 1 {
		t.Errorf("Misses = %d, want 1", snap.Misses)
	}
	if snap.Hits != 2 {
		t.Errorf("Hits = %d, want 2", snap.Hits)
	}
}
