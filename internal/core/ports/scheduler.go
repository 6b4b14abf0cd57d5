package ports

import "context"

// Policy configures how collected_map_reduce splits a batch of inputs into
// per-worker chunks.
//
//go:generate mockgen -source=scheduler.go -destination=mocks/mock_scheduler.go -package=mocks
type Policy struct {
	// MinChunksPerWorker is the floor on chunk count regardless of input size.
	MinChunksPerWorker int
	// MinChunkSize is the floor on items per chunk; small inputs collapse to
	// fewer, larger chunks rather than spinning up workers for a handful of
	// items each.
	MinChunkSize int
	// PreferredChunksPerWorker is the target chunk count per worker once the
	// input is large enough for both floors to be satisfied.
	PreferredChunksPerWorker int
}

// FixedChunkCountPolicy builds the Policy variant named in the spec: a fixed
// chunk count per worker, bounded below by MinChunksPerWorker and
// MinChunkSize.
func FixedChunkCountPolicy(minChunksPerWorker, minChunkSize, preferredChunksPerWorker int) Policy {
	return Policy{
		MinChunksPerWorker:       minChunksPerWorker,
		MinChunkSize:             minChunkSize,
		PreferredChunksPerWorker: preferredChunksPerWorker,
	}
}

// Scheduler is the narrow seam the engine depends on for parallel work.
// collected_map_reduce itself cannot be a method here (Go forbids generic
// methods) — it is a free function in package mapreduce that takes a
// Scheduler as its first argument.
type Scheduler interface {
	// OncePerWorker runs f exactly once on each worker in the pool, e.g. to
	// seed worker-local state before a batch of chunked work begins.
	OncePerWorker(ctx context.Context, f func(ctx context.Context) error) error

	// Parallelism reports the number of workers this scheduler will use to
	// split a chunked batch.
	Parallelism() int

	// Run executes fns across the worker pool, respecting Parallelism, and
	// returns the first error encountered (others are discarded once the
	// group is canceled).
	Run(ctx context.Context, fns []func(ctx context.Context) error) error
}
