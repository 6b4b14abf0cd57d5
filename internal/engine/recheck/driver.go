// Package recheck implements the orchestrator-facing entry point: the nine
// steps that turn a batch of changed artifact paths into a reconciled
// diagnostic list, coordinating the parser layer, the derived layer stack,
// the type environment, and the external inference/post-processing passes.
package recheck

import (
	"context"
	"sort"

	"go.trai.ch/zerr"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/typeenv"
	"github.com/RastaKolobar/pyre-check/internal/engine/typestack"
)

// Driver owns every collaborator recheck needs: the registry handles are
// interned against, the parser and derived layer stack, the type
// environment, the error table, and the external inference/post-processing
// collaborators.
type Driver struct {
	Registry       *domain.Registry
	Scheduler      ports.Scheduler
	Stack          *typestack.Stack
	Environment    *typeenv.Environment
	Errors         *domain.ErrorTable
	Inference      ports.TypeInference
	Postprocessing ports.Postprocessing
	Memory         ports.SharedMemory
}

// New wires a Driver from its collaborators.
func New(
	registry *domain.Registry,
	sched ports.Scheduler,
	stack *typestack.Stack,
	env *typeenv.Environment,
	errors *domain.ErrorTable,
	inference ports.TypeInference,
	postprocessing ports.Postprocessing,
	memory ports.SharedMemory,
) *Driver {
	return &Driver{
		Registry:       registry,
		Scheduler:      sched,
		Stack:          stack,
		Environment:    env,
		Errors:         errors,
		Inference:      inference,
		Postprocessing: postprocessing,
		Memory:         memory,
	}
}

// Recheck runs the full nine-step algorithm over paths, returning the set
// of modules that were post-processed and the diagnostics produced for
// them.
func (d *Driver) Recheck(ctx context.Context, paths []string) ([]string, []domain.Diagnostic, error) {
	// Step 1: invalidate process-wide auxiliary caches.
	d.Memory.InvalidateCaches()

	// Step 2: update the parser layer and cascade through the derived stack.
	parserResult, err := d.Stack.Parser.UpdateThisAndAllPrecedingEnvironments(paths)
	if err != nil {
		return nil, nil, err
	}
	topResult, err := d.Stack.UpdateAll(ctx, parserResult.Result)
	if err != nil {
		return nil, nil, err
	}

	// Step 3: extract function triggers, first-wins on duplicates.
	functionTriggers := make(map[string]domain.Handle)
	var triggerOrder []string
	for _, set := range topResult.AllTriggeredDependencies() {
		for h := range set {
			descriptor, err := d.Registry.GetKey(h)
			if err != nil {
				return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrInconsistentUpstream.Error()), "handle", int32(h))
			}
			if descriptor.Kind != domain.KindTypeCheckDefine {
				continue
			}
			name := descriptor.Name.String()
			if _, exists := functionTriggers[name]; exists {
				continue
			}
			functionTriggers[name] = h
			triggerOrder = append(triggerOrder, name)
		}
	}

	// Step 4: extract function additions and body-only edits and synthesize
	// their triggers. DefineUpdates covers the case the update chain can't
	// surface on its own: an existing define whose body changed without its
	// signature changing, so the UnannotatedGlobal it reads from the parser
	// layer is unchanged and the equality short-circuit never re-triggers
	// TypeCheckDefine for it.
	addTrigger := func(name string) {
		if _, exists := functionTriggers[name]; exists {
			return
		}
		h := d.Environment.HandleFor(name)
		functionTriggers[name] = h
		triggerOrder = append(triggerOrder, name)
	}
	for _, name := range parserResult.DefineAdditions {
		addTrigger(name)
	}
	for _, name := range parserResult.DefineUpdates {
		addTrigger(name)
	}
	sort.Strings(triggerOrder)

	// Step 5: invalidate the per-function cache, then re-infer.
	d.Environment.InvalidatePerFunctionCache(triggerOrder)

	defines := make([]ports.DefineTrigger, len(triggerOrder))
	for i, name := range triggerOrder {
		h := functionTriggers[name]
		defines[i] = ports.DefineTrigger{Name: name, Handle: &h}
	}

	inferred, err := d.Inference.PopulateForDefinitions(ctx, d.Scheduler, d.Stack, defines)
	if err != nil {
		return nil, nil, err
	}
	var inferredDiagnostics []domain.Diagnostic
	for _, result := range inferred {
		d.Environment.Populate(result.Name, typeenv.Annotation{
			Qualifier:   result.Name,
			ReturnType:  result.ReturnType,
			Diagnostics: result.Diagnostics,
		})
		inferredDiagnostics = append(inferredDiagnostics, result.Diagnostics...)
	}

	// Step 6: compute modules to post-process. InvalidatedModules names both
	// modules that changed and modules that were deleted outright; only the
	// ones still present in ModuleUpdates survive into the post-process set
	// (scenario: deleted module). Deleted modules still need their stale
	// error-table entries dropped, just without a post-processing pass.
	updated := make(map[string]struct{}, len(parserResult.ModuleUpdates))
	for _, m := range parserResult.ModuleUpdates {
		updated[m] = struct{}{}
	}

	moduleSet := make(map[string]struct{})
	var deleted []string
	for _, m := range parserResult.InvalidatedModules {
		if _, stillPresent := updated[m]; stillPresent {
			moduleSet[m] = struct{}{}
		} else {
			deleted = append(deleted, m)
		}
	}
	for _, name := range triggerOrder {
		if def, ok := d.Stack.Parser.GetFunctionDefinition(name); ok {
			moduleSet[def.Module] = struct{}{}
			continue
		}
		moduleSet[moduleOf(name)] = struct{}{}
	}
	modules := make([]string, 0, len(moduleSet))
	for m := range moduleSet {
		modules = append(modules, m)
	}
	sort.Strings(modules)
	sort.Strings(deleted)

	if len(deleted) > 0 {
		d.Errors.Reconcile(deleted, nil)
	}

	// Step 7: run post-processing.
	diagnostics, err := d.Postprocessing.Run(ctx, d.Scheduler, modules)
	if err != nil {
		return nil, nil, err
	}
	diagnostics = append(diagnostics, inferredDiagnostics...)

	// Step 8: reconcile the error table for the post-processed set.
	d.Errors.Reconcile(modules, diagnostics)

	// Step 9: return the post-processed module list and new diagnostics.
	return modules, diagnostics, nil
}

func moduleOf(qualified string) string {
	for i := len(qualified) - 1; i >= 0; i-- {
		if qualified[i] == '.' {
			return qualified[:i]
		}
	}
	return qualified
}
