// Package inferstub implements ports.TypeInference and ports.Postprocessing
// with simplified, deterministic stand-ins for the
// out-of-scope real type-checking algorithm. Its job is to exercise the
// recheck driver's wiring, not to check types.
package inferstub

import (
	"context"
	"fmt"
	"sort"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
)

// Inference is a deterministic stand-in for the real type checker: it
// reports every define's return type as "Unknown" and raises a diagnostic
// only for defines whose qualified name matches a configurable failure
// predicate (function bodies are never examined), so tests can
// drive specific recheck outcomes without a real inference engine.
type Inference struct {
	// Fails, when non-nil, reports whether qualifier's re-inference should
	// produce a diagnostic. Nil means nothing ever fails.
	Fails func(qualifier string) bool
}

// New creates an Inference that never fails.
func New() *Inference {
	return &Inference{}
}

// PopulateForDefinitions runs over every define in sched's worker pool. For
// each, it reads its own qualified name back out of reader under its own
// dependency handle — a stand-in for the real pass reading whatever global
// types a function body actually references, attributed the same way.
func (inf *Inference) PopulateForDefinitions(
	ctx context.Context, sched ports.Scheduler, reader ports.GlobalReader, defines []ports.DefineTrigger,
) ([]ports.InferredDefine, error) {
	if len(defines) == 0 {
		return nil, nil
	}

	results := make([]ports.InferredDefine, len(defines))
	fns := make([]func(context.Context) error, len(defines))
	for i, d := range defines {
		i, d := i, d
		fns[i] = func(ctx context.Context) error {
			result, err := inf.infer(ctx, reader, d)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		}
	}

	if err := sched.Run(ctx, fns); err != nil {
		return nil, err
	}
	return results, nil
}

func (inf *Inference) infer(ctx context.Context, reader ports.GlobalReader, d ports.DefineTrigger) (ports.InferredDefine, error) {
	if reader != nil {
		if _, _, err := reader.TypeOfGlobal(ctx, nil, d.Handle, d.Name); err != nil {
			return ports.InferredDefine{}, err
		}
	}

	result := ports.InferredDefine{Name: d.Name, ReturnType: "Unknown"}
	if inf.Fails != nil && inf.Fails(d.Name) {
		result.Diagnostics = []domain.Diagnostic{{
			Module:   moduleOf(d.Name),
			Line:     1,
			Column:   1,
			Message:  fmt.Sprintf("incompatible return type for %s", d.Name),
			Severity: "error",
		}}
	}
	return result, nil
}

func moduleOf(qualified string) string {
	for i := len(qualified) - 1; i >= 0; i-- {
		if qualified[i] == '.' {
			return qualified[:i]
		}
	}
	return qualified
}

// Postprocessing runs the same deterministic pass as a batch over whole
// modules, for diagnostics that depend on more than a single function body
// (import cycles, unused imports — out of scope here, so it always
// produces an empty diagnostic list per module).
type Postprocessing struct{}

// NewPostprocessing creates a Postprocessing pass that reports no
// module-level diagnostics.
func NewPostprocessing() *Postprocessing { return &Postprocessing{} }

// Run visits every module in sched's worker pool. The stub contributes no
// diagnostics of its own; its purpose is to exercise the driver's
// post-processing fan-out, not to detect anything.
func (p *Postprocessing) Run(ctx context.Context, sched ports.Scheduler, modules []string) ([]domain.Diagnostic, error) {
	if len(modules) == 0 {
		return nil, nil
	}

	sorted := make([]string, len(modules))
	copy(sorted, modules)
	sort.Strings(sorted)

	fns := make([]func(context.Context) error, len(sorted))
	for i := range sorted {
		fns[i] = func(context.Context) error { return nil }
	}
	if err := sched.Run(ctx, fns); err != nil {
		return nil, err
	}
	return nil, nil
}
