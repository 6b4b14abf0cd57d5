// Package scheduler implements the worker pool the engine distributes
// collected_map_reduce batches across.
package scheduler

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Scheduler bounds concurrent work to a fixed worker count via errgroup,
// the same primitive the teacher repo's environment-hydration phase used
// for batch concurrency.
type Scheduler struct {
	parallelism int
}

// New creates a Scheduler with the given parallelism. A non-positive value
// defaults to runtime.NumCPU().
func New(parallelism int) *Scheduler {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	return &Scheduler{parallelism: parallelism}
}

// Parallelism reports the configured worker count.
func (s *Scheduler) Parallelism() int {
	return s.parallelism
}

// Run executes fns across the worker pool, returning the first error after
// the group drains.
func (s *Scheduler) Run(ctx context.Context, fns []func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for _, fn := range fns {
		fn := fn
		g.Go(func() error {
			return fn(gctx)
		})
	}

	return g.Wait()
}

// OncePerWorker runs f exactly once on each of the pool's workers. Useful
// for seeding worker-local state (e.g. a per-worker scratch buffer) before
// a chunked batch begins.
func (s *Scheduler) OncePerWorker(ctx context.Context, f func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for i := 0; i < s.parallelism; i++ {
		g.Go(func() error {
			return f(gctx)
		})
	}

	return g.Wait()
}
