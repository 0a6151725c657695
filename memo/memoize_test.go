package memo_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonwraymond/memocall/memo"
)

// TestMemoize1_ConcurrentScenario runs the canonical scenario: ten
// concurrent callers with x=5 all receive 10 from a single
// computation, then x=7 computes once more.
func TestMemoize1_ConcurrentScenario(t *testing.T) {
	var count atomic.Int32
	double := memo.Memoize1(func(x int) (int, error) {
		count.Add(1)
		time.Sleep(5 * time.Millisecond)
		return x * 2, nil
	})

	const n = 10
	var wg sync.WaitGroup
	wg.Add(n)
	results := make([]int, n)
	for i := range n {
		go func(i int) {
			defer wg.Done()
			results[i], _ = double(5)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r != 10 {
			t.Errorf("caller %d: got %d, want 10", i, r)
		}
	}
	if got := count.Load(); got != 1 {
		t.Errorf("count = %d after concurrent x=5, want 1", got)
	}

	v, err := double(7)
	if err != nil {
		t.Fatal(err)
	}
	if v != 14 {
		t.Errorf("double(7) = %d, want 14", v)
	}
	if got := count.Load(); got != 2 {
		t.Errorf("count = %d after x=7, want 2", got)
	}
}

// TestMemoize0_ComputesOnce verifies the zero-argument form.
func TestMemoize0_ComputesOnce(t *testing.T) {
	var count atomic.Int32
	load := memo.Memoize0(func() (string, error) {
		count.Add(1)
		return "loaded", nil
	})

	for range 3 {
		v, err := load()
		if err != nil {
			t.Fatal(err)
		}
		if v != "loaded" {
			t.Fatalf("got %q, want %q", v, "loaded")
		}
	}
	if got := count.Load(); got != 1 {
		t.Errorf("fn called %d times, want 1", got)
	}
}

// TestMemoize2_OrderSensitive verifies (a, b) and (b, a) are distinct
// keys while a repeated (a, b) is a hit.
func TestMemoize2_OrderSensitive(t *testing.T) {
	var count atomic.Int32
	concat := memo.Memoize2(func(a, b string) (string, error) {
		count.Add(1)
		return a + b, nil
	})

	v1, _ := concat("A", "B")
	v2, _ := concat("B", "A")
	v3, _ := concat("A", "B")

	if v1 != "AB" || v2 != "BA" || v3 != "AB" {
		t.Fatalf("got %q, %q, %q; want AB, BA, AB", v1, v2, v3)
	}
	if got := count.Load(); got != 2 {
		t.Errorf("fn called %d times, want 2", got)
	}
}

// TestMemoize3_DistinctTuples verifies three-argument keys compare as
// ordered tuples.
func TestMemoize3_DistinctTuples(t *testing.T) {
	var count atomic.Int32
	sum := memo.Memoize3(func(a, b, c int) (int, error) {
		count.Add(1)
		return a + b + c, nil
	})

	tests := []struct {
		a, b, c int
		want    int
	}{
		{1, 2, 3, 6},
		{3, 2, 1, 6}, // same sum, different tuple
		{1, 2, 3, 6}, // hit
	}
	for _, tt := range tests {
		got, err := sum(tt.a, tt.b, tt.c)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("sum(%d,%d,%d) = %d, want %d", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
	if got := count.Load(); got != 2 {
		t.Errorf("fn called %d times, want 2", got)
	}
}

// TestMemoize1_ErrorRetried verifies failures are not cached and the
// first success afterwards is.
func TestMemoize1_ErrorRetried(t *testing.T) {
	var count atomic.Int32
	flaky := memo.Memoize1(func(x int) (int, error) {
		if count.Add(1) == 1 {
			return 0, errors.New("transient")
		}
		return x * 10, nil
	})

	if _, err := flaky(4); err == nil {
		t.Fatal("first call: expected error")
	}

	v, err := flaky(4)
	if err != nil {
		t.Fatalf("second call: unexpected error: %v", err)
	}
	if v != 40 {
		t.Fatalf("second call: got %d, want 40", v)
	}

	if _, err := flaky(4); err != nil {
		t.Fatalf("third call: unexpected error: %v", err)
	}
	if got := count.Load(); got != 2 {
		t.Errorf("fn called %d times, want 2", got)
	}
}

// TestMemoizeContext1_WaiterCancellation verifies a caller cancelled
// while another caller computes receives ctx.Err and never computes.
func TestMemoizeContext1_WaiterCancellation(t *testing.T) {
	var count atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	slow := memo.MemoizeContext1(func(_ context.Context, x int) (int, error) {
		count.Add(1)
		close(started)
		<-release
		return x, nil
	})

	go func() {
		_, _ = slow(context.Background(), 1)
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := slow(ctx, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}

	close(release)
	if got := count.Load(); got != 1 {
		t.Errorf("fn called %d times, want 1", got)
	}
}

// TestMemoizeContext2_SharesResult exercises the context flavor end to
// end.
func TestMemoizeContext2_SharesResult(t *testing.T) {
	var count atomic.Int32
	join := memo.MemoizeContext2(func(_ context.Context, a string, b int) (string, error) {
		count.Add(1)
		return a, nil
	})

	ctx := context.Background()
	for range 2 {
		v, err := join(ctx, "x", 1)
		if err != nil || v != "x" {
			t.Fatalf("got (%q, %v), want (x, nil)", v, err)
		}
	}
	if got := count.Load(); got != 1 {
		t.Errorf("fn called %d times, want 1", got)
	}
}

// TestMemoize_IndependentWrappers verifies each wrapper owns its own
// store.
func TestMemoize_IndependentWrappers(t *testing.T) {
	var count atomic.Int32
	fn := func(x int) (int, error) {
		count.Add(1)
		return x, nil
	}

	m1 := memo.Memoize1(fn)
	m2 := memo.Memoize1(fn)

	_, _ = m1(1)
	_, _ = m2(1)

	if got := count.Load(); got != 2 {
		t.Errorf("fn called %d times across two wrappers, want 2", got)
	}
}

// TestMemoize_NilFuncPanics verifies constructors reject nil
// functions.
func TestMemoize_NilFuncPanics(t *testing.T) {
	tests := []struct {
		name      string
		construct func()
	}{
		{"Memoize0", func() { memo.Memoize0[int](nil) }},
		{"Memoize1", func() { memo.Memoize1[int, int](nil) }},
		{"Memoize2", func() { memo.Memoize2[int, int, int](nil) }},
		{"Memoize3", func() { memo.Memoize3[int, int, int, int](nil) }},
		{"MemoizeContext0", func() { memo.MemoizeContext0[int](nil) }},
		{"First1", func() { memo.First1[int, int](nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, memo.ErrNilFunc) {
					t.Fatalf("panic value = %v, want ErrNilFunc", r)
				}
			}()
			tt.construct()
		})
	}
}
