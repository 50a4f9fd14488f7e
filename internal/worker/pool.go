// Package worker provides a worker pool for running game playouts in
// parallel.
package worker

import (
	"sync"
	"sync/atomic"
)

// Playout describes one playout to run.
type Playout struct {
	Seed     int64
	MaxPlies int
	Index    int // Original index for tracking
}

// PlayoutResult is the outcome of one playout.
type PlayoutResult struct {
	Index      int
	Seed       int64
	Plies      int
	Promotions int
	RankGrowth int    // ranks added beyond the traditional eight
	Outcome    string // "checkmate", "stalemate" or "unfinished"
	Winner     string // winning team name for checkmates, otherwise ""
	Err        error
}

// RunFunc is the function signature for running a playout.
type RunFunc func(p Playout) PlayoutResult

// Pool manages a pool of workers running playouts in parallel.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan Playout
	resultChan chan PlayoutResult
	runFunc    RunFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool using functional options. runFunc is
// required; other settings have sensible defaults (1 worker, buffer of 10).
func NewPool(runFunc RunFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		runFunc:    runFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan Playout, p.bufferSize)
	p.resultChan = make(chan PlayoutResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker runs playouts from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.runFunc(item)
	}
}

// Submit submits a playout for processing. This may block if the work
// channel buffer is full.
func (p *Pool) Submit(item Playout) {
	p.workChan <- item
}

// Stop signals workers to stop picking up new items. Items already in the
// channel are drained but not run.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish. The
// result channel is closed once all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading finished playouts.
func (p *Pool) Results() <-chan PlayoutResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
