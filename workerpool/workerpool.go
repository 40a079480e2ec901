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

// Package workerpool runs batch vector kernels across a fixed set of
// goroutines.
//
// A Pool is created once and reused for every batch, so a loop that
// normalizes many slices of vectors pays for goroutine startup only once:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, mesh := range meshes {
//	    lane.ParallelNormalize3(pool, mesh.Normals, mesh.Normals)
//	}
package workerpool

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers. The zero value is not usable; call New.
// A Pool is safe for concurrent use.
type Pool struct {
	numWorkers int
	workC      chan task

	// mu is held for reading while tasks are sent so Close never closes
	// workC under a pending send.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once pending work completes. It is safe to call
// more than once and concurrently with Parallel* calls: a call that has
// already handed its ranges to the workers finishes on them, and every call
// that starts after Close runs on the caller's goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// run hands every fn to the workers and waits for them. It reports false,
// without running anything, if the pool is closed.
func (p *Pool) run(fns []func()) bool {
	var wg sync.WaitGroup
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	wg.Add(len(fns))
	for _, fn := range fns {
		p.workC <- task{fn: fn, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
	return true
}

// ranges splits [0, n) into at most workers contiguous ranges and returns
// one fn per range.
func ranges(n, workers int, fn func(start, end int)) []func() {
	chunk := (n + workers - 1) / workers
	fns := make([]func(), 0, workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		fns = append(fns, func() { fn(start, end) })
	}
	return fns
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || !p.run(ranges(n, workers, fn)) {
		fn(0, n)
	}
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out indices
// one at a time so uneven work balances across workers.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers > 1 {
		var next atomic.Int64
		steal := func() {
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}
		fns := make([]func(), workers)
		for w := range fns {
			fns[w] = steal
		}
		if p.run(fns) {
			return
		}
	}
	for i := range n {
		fn(i)
	}
}

// ParallelForContext is ParallelFor with cancellation and errors. The ranges
// run on the workers of the pool, or on the caller's goroutine once the pool
// is closed. The first error cancels the context passed to the remaining
// ranges and is returned; ranges that have not started when the context is
// done are skipped and report its error.
func (p *Pool) ParallelForContext(ctx context.Context, n int, fn func(ctx context.Context, start, end int) error) error {
	if err := ctx.Err(); err != nil || n <= 0 {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once  sync.Once
		first error
	)
	fail := func(err error) {
		once.Do(func() {
			first = err
			cancel()
		})
	}
	body := func(start, end int) {
		if err := ctx.Err(); err != nil {
			fail(err)
			return
		}
		if err := fn(ctx, start, end); err != nil {
			fail(fmt.Errorf("range [%d, %d): %w", start, end, err))
		}
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || !p.run(ranges(n, workers, body)) {
		body(0, n)
	}
	return first
}
