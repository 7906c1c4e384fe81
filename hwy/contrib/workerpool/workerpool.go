// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent jobs on a fixed set of persistent
// workers. Each worker has a stable index in [0, NumWorkers), and a job
// callback is never run concurrently with another callback carrying the same
// index. Callers use the index to keep per-worker state that must not be
// shared, such as one render engine and its pixel buffer per worker.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	engines := make([]*Engine, pool.NumWorkers())
//	pool.ForEach(len(frames), func(worker, i int) {
//	    if engines[worker] == nil {
//	        engines[worker] = NewEngine()
//	    }
//	    render(engines[worker], frames[i])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many batches.
// Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one worker's share of a batch.
type workItem struct {
	fn      func(worker int)
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for id := range numWorkers {
		go p.worker(id)
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker(id int) {
	for item := range p.workC {
		item.fn(id)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and blocks
// until all ranges are processed.
//
// fn receives the worker index and (start, end) indices where work should
// process [start, end).
func (p *Pool) ParallelFor(n int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		// Sequential on worker 0 for a single range or a closed pool
		fn(0, 0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)

		wg.Add(1)
		p.workC <- workItem{
			fn: func(worker int) {
				fn(worker, start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ForEach calls fn for each index in [0, n) using atomic work stealing,
// which balances batches whose items vary in cost. Blocks until all work
// completes.
//
// fn receives the worker index and the item index to process.
func (p *Pool) ForEach(n int, fn func(worker, i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(0, i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func(worker int) {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(worker, i)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
