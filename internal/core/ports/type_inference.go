package ports

import (
	"context"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
)

// DefineTrigger pairs a function's qualified name with the RegisteredDependency
// handle that produce_value calls made during its re-inference should be
// attributed to. Handle is nil for a define with no corresponding upstream
// trigger (e.g. a brand-new function with no prior consumer).
type DefineTrigger struct {
	Name   string
	Handle *domain.Handle
}

// InferredDefine is one function's freshly computed annotation, as handed
// back by PopulateForDefinitions. The recheck driver writes these into the
// type environment itself — the inference pass has no direct access to it.
type InferredDefine struct {
	Name        string
	ReturnType  string
	Diagnostics []domain.Diagnostic
}

// GlobalReader is the narrow read view the external inference pass gets
// into the layer stack's top, so that a global's type read during one
// function's re-inference is attributed to that function's dependency
// handle. This is the Go shape of the "environment" parameter passed to
// populate_for_definitions: the inference pass never sees layer internals,
// only this one lookup.
type GlobalReader interface {
	TypeOfGlobal(ctx context.Context, collector *domain.Collector, dependency *domain.Handle, qualifiedName string) (typeName string, ok bool, err error)
}

// TypeInference is the external type-checking algorithm the engine delegates
// actual inference to. The engine's own job is to decide *which* defines
// need re-inference and under what dependency handle their reads should be
// attributed, not to run the algorithm itself.
//
//go:generate mockgen -source=type_inference.go -destination=mocks/mock_type_inference.go -package=mocks
type TypeInference interface {
	// PopulateForDefinitions runs type inference for every named define,
	// threading each pair's dependency handle through reader so any global
	// type lookups performed during inference are attributed to the right
	// consumer, and returns one InferredDefine per input.
	PopulateForDefinitions(ctx context.Context, sched Scheduler, reader GlobalReader, defines []DefineTrigger) ([]InferredDefine, error)
}

// Postprocessing is the external diagnostic pass that runs after
// re-inference completes.
type Postprocessing interface {
	// Run produces the full diagnostic list for modules.
	Run(ctx context.Context, sched Scheduler, modules []string) ([]domain.Diagnostic, error)
}

// SharedMemory is the process-wide runtime the recheck driver asks to drop
// auxiliary caches before each update, and to report memory pressure for
// telemetry. Opaque to the layer framework itself.
type SharedMemory interface {
	InvalidateCaches()
	Collect(aggressive bool)
	HeapSize() uint64
}
