// Package exec provides the fork-join execution context of the kernel: a
// fixed set of worker threads run a parallel region to completion, and
// serial phases in between are where shared dictionaries may be mutated.
//
// The Pool doubles as the dict.Guard capability: audit operations on shared
// dictionaries assert through it that no parallel region is active.
package exec

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool is a fork-join region runner over a fixed number of worker threads.
type Pool struct {
	workers  int
	parallel atomic.Bool
}

// NewPool returns a pool with the given number of worker threads.
func NewPool(workers int) (*Pool, error) {
	if workers < 1 {
		return nil, fmt.Errorf("exec: worker count must be positive, got %d", workers)
	}
	return &Pool{workers: workers}, nil
}

// Workers returns the fixed worker count.
func (p *Pool) Workers() int { return p.workers }

// Run executes fn once per worker thread and joins. The first error cancels
// the region's context and is returned after all workers finish. Regions do
// not nest.
func (p *Pool) Run(ctx context.Context, fn func(ctx context.Context, thread int) error) error {
	if !p.parallel.CompareAndSwap(false, true) {
		return fmt.Errorf("exec: parallel region already active")
	}
	defer p.parallel.Store(false)

	g, ctx := errgroup.WithContext(ctx)
	for thread := 0; thread < p.workers; thread++ {
		thread := thread
		g.Go(func() error {
			return fn(ctx, thread)
		})
	}
	return g.Wait()
}

// AssertSingleThreaded implements dict.Guard. It panics if a parallel region
// is active: resetting or checking access flags mid-region is a phase
// discipline violation in the caller, never a recoverable condition.
func (p *Pool) AssertSingleThreaded() {
	if p.parallel.Load() {
		panic("exec: operation requires a serial phase, but a parallel region is active")
	}
}
