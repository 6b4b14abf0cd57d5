// Package mapreduce implements collected_map_reduce: the mechanism by
// which an EnvironmentLayer's batch recomputation is distributed across a
// scheduler's worker pool while every produce_value invocation's upstream
// reads are attributed to the RegisteredDependency handle it computes.
package mapreduce

import (
	"context"
	"sync"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
)

// MapFunc computes one item's local result, recording against collector
// every upstream handle the computation reads.
type MapFunc[I any, L any] func(ctx context.Context, item I, collector *domain.Collector) (L, error)

// ReduceFunc folds one local result into the running accumulator.
// Recomputation order across items is unspecified, so ReduceFunc must
// tolerate any fold order — commutative and associative, like a running
// union or count.
type ReduceFunc[L any, R any] func(acc R, local L) R

// CollectedMapReduce splits inputs into chunks per policy, runs mapFn over
// every item across sched's worker pool, folds each local result into
// initial via reduceFn, and returns the union of every Collector touch
// recorded during the run.
func CollectedMapReduce[I any, L any, R any](
	ctx context.Context,
	sched ports.Scheduler,
	policy ports.Policy,
	mapFn MapFunc[I, L],
	reduceFn ReduceFunc[L, R],
	inputs []I,
	initial R,
) (R, domain.HandleSet, error) {
	if len(inputs) == 0 {
		return initial, make(domain.HandleSet), nil
	}

	chunks := splitIntoChunks(inputs, chunkCount(len(inputs), sched.Parallelism(), policy))

	var mu sync.Mutex
	acc := initial
	collector := domain.NewCollector()

	fns := make([]func(context.Context) error, len(chunks))
	for i, chunk := range chunks {
		chunk := chunk
		fns[i] = func(ctx context.Context) error {
			for _, item := range chunk {
				local, err := mapFn(ctx, item, collector)
				if err != nil {
					return err
				}
				mu.Lock()
				acc = reduceFn(acc, local)
				mu.Unlock()
			}
			return nil
		}
	}

	if err := sched.Run(ctx, fns); err != nil {
		var zero R
		return zero, nil, err
	}

	return acc, collector.Snapshot(), nil
}

// chunkCount implements fixed_chunk_count: the preferred chunks-per-worker
// count, lowered to as many chunks as total fills at the minimum chunk size,
// then raised to the minimum chunks-per-worker floor (which wins over the
// minimum chunk size), and never more chunks than items.
func chunkCount(total, workers int, policy ports.Policy) int {
	if total == 0 {
		return 0
	}
	if workers < 1 {
		workers = 1
	}
	minChunkSize := policy.MinChunkSize
	if minChunkSize < 1 {
		minChunkSize = 1
	}

	minChunks := workers * policy.MinChunksPerWorker
	n := workers * policy.PreferredChunksPerWorker
	if bySize := total / minChunkSize; bySize < n {
		n = bySize
	}
	if n < minChunks {
		n = minChunks
	}
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	return n
}

func splitIntoChunks[I any](inputs []I, n int) [][]I {
	if n < 1 {
		n = 1
	}
	chunks := make([][]I, 0, n)
	base := len(inputs) / n
	rem := len(inputs) % n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		chunks = append(chunks, inputs[start:start+size])
		start += size
	}
	return chunks
}
