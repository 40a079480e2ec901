// Copyright 2025 go-vmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 3, 4, 5, 100, 1001} {
		results := make([]int, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				results[i] += i * 2
			}
		})
		for i := range n {
			if results[i] != i*2 {
				t.Errorf("n=%d: results[%d] = %d, want %d", n, i, results[i], i*2)
			}
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1000
	var visits [1000]atomic.Int32
	pool.ParallelForAtomic(n, func(i int) {
		visits[i].Add(1)
	})
	for i := range n {
		if got := visits[i].Load(); got != 1 {
			t.Errorf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var sum int
	pool.ParallelFor(10, func(start, end int) {
		for i := start; i < end; i++ {
			sum += i
		}
	})
	pool.ParallelForAtomic(10, func(i int) { sum += i })
	if sum != 90 {
		t.Errorf("sum = %d, want 90", sum)
	}
}

func TestParallelForContext(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	n := 257
	var total atomic.Int64
	err := pool.ParallelForContext(context.Background(), n, func(ctx context.Context, start, end int) error {
		for i := start; i < end; i++ {
			total.Add(int64(i))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelForContext: %v", err)
	}
	if want := int64(n * (n - 1) / 2); total.Load() != want {
		t.Errorf("total = %d, want %d", total.Load(), want)
	}
}

func TestParallelForContextError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	errBad := errors.New("bad range")
	err := pool.ParallelForContext(context.Background(), 100, func(ctx context.Context, start, end int) error {
		if start == 0 {
			return errBad
		}
		return nil
	})
	if !errors.Is(err, errBad) {
		t.Errorf("err = %v, want %v", err, errBad)
	}
}

func TestParallelForContextCanceled(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := pool.ParallelForContext(ctx, 100, func(ctx context.Context, start, end int) error {
		calls.Add(1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if calls.Load() != 0 {
		t.Errorf("fn called %d times after cancel", calls.Load())
	}
}

func TestParallelForContextRangesUseWorkers(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var calls atomic.Int32
	err := pool.ParallelForContext(context.Background(), 4, func(ctx context.Context, start, end int) error {
		calls.Add(1)
		if end-start != 1 {
			t.Errorf("range [%d, %d), want one index per worker", start, end)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelForContext: %v", err)
	}
	if calls.Load() != 4 {
		t.Errorf("fn called %d times, want 4", calls.Load())
	}
}

func TestParallelForContextAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()

	var calls int
	err := pool.ParallelForContext(context.Background(), 4, func(ctx context.Context, start, end int) error {
		calls++
		if start != 0 || end != 4 {
			t.Errorf("range [%d, %d), want [0, 4) on the caller's goroutine", start, end)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelForContext: %v", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times after Close, want 1", calls)
	}

	errBad := errors.New("bad")
	err = pool.ParallelForContext(context.Background(), 4, func(ctx context.Context, start, end int) error {
		return errBad
	})
	if !errors.Is(err, errBad) {
		t.Errorf("err = %v, want %v", err, errBad)
	}
}

func TestCloseDuringCalls(t *testing.T) {
	pool := New(4)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			for range 200 {
				n := 64
				results := make([]int, n)
				pool.ParallelFor(n, func(start, end int) {
					for i := start; i < end; i++ {
						results[i] = i + 1
					}
				})
				pool.ParallelForAtomic(n, func(i int) { results[i]++ })
				for i, r := range results {
					if r != i+2 {
						return errors.New("missing index")
					}
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		runtime.Gosched()
		pool.Close()
		return nil
	})
	if err := g.Wait(); err != nil {
		t.Error(err)
	}
}

func TestConcurrentCallers(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	g, ctx := errgroup.WithContext(context.Background())
	var total atomic.Int64
	for c := range 6 {
		g.Go(func() error {
			return pool.ParallelForContext(ctx, 100, func(ctx context.Context, start, end int) error {
				total.Add(int64((end - start) * (c + 1)))
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("ParallelForContext: %v", err)
	}
	if want := int64(100 * (1 + 2 + 3 + 4 + 5 + 6)); total.Load() != want {
		t.Errorf("total = %d, want %d", total.Load(), want)
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	data := make([]float32, 1<<16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(len(data), func(start, end int) {
			for j := start; j < end; j++ {
				data[j] = data[j]*0.5 + 1
			}
		})
	}
}
