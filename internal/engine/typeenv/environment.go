// Package typeenv holds the type environment: the per-function annotation
// cache the recheck driver manipulates directly, rather than through the
// Bridge/Layer machinery the rest of the stack uses.
//
// Every layer below it fits the produce_value shape: one trigger, one
// upstream read, one stored value. The type environment does not — its
// contents come from invoking an external, self-scheduling inference pass
// over a batch of triggers at once, and the pass itself has no handle to
// write its results back through. The recheck driver therefore owns the
// Table directly: it invalidates the stale entries, calls the inference
// pass, and populates the results itself.
package typeenv

import (
	"fmt"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
)

// Annotation is one function's type-checking result: its inferred
// parameter/return types plus whatever diagnostics its body produced.
type Annotation struct {
	Qualifier   string
	ReturnType  string
	Diagnostics []domain.Diagnostic
}

func (a Annotation) Equal(other domain.Value) bool {
	o, ok := other.(Annotation)
	if !ok || o.Qualifier != a.Qualifier || o.ReturnType != a.ReturnType || len(o.Diagnostics) != len(a.Diagnostics) {
		return false
	}
	for i := range a.Diagnostics {
		if o.Diagnostics[i] != a.Diagnostics[i] {
			return false
		}
	}
	return true
}

func (a Annotation) String() string {
	return fmt.Sprintf("Annotation{%s -> %s, %d diagnostics}", a.Qualifier, a.ReturnType, len(a.Diagnostics))
}

// Environment is a thin wrapper around a Table[string, Annotation],
// exposing exactly the three operations the recheck driver needs: a
// consumer-tracking read, a pessimistic invalidation of a batch of
// functions, and a direct repopulation of freshly inferred results.
type Environment struct {
	registry *domain.Registry
	table    *domain.Table[string, Annotation]
}

// New creates an empty Environment over registry, used to intern
// TypeCheckDefine handles for the functions it caches.
func New(registry *domain.Registry) *Environment {
	return &Environment{
		registry: registry,
		table:    domain.NewTableWithCache[string, Annotation](),
	}
}

// Get returns qualifier's cached annotation, recording dependency (if
// non-nil) as a consumer — later invalidation of qualifier will then
// include dependency in the returned triggered set.
func (e *Environment) Get(collector *domain.Collector, dependency *domain.Handle, qualifier string) (Annotation, bool) {
	return e.table.Get(collector, dependency, qualifier)
}

// HandleFor interns qualifier's TypeCheckDefine descriptor, for callers
// that need a stable handle to pass as Get's dependency or to look for in
// an UpdateResult's triggered sets.
func (e *Environment) HandleFor(qualifier string) domain.Handle {
	return e.registry.Register(domain.NewTypeCheckDefine(qualifier))
}

// InvalidatePerFunctionCache pessimistically drops qualifiers' cached
// annotations without recomputing them, returning the handles of every
// consumer that had read one of them. Per spec §4.5 step 5, this always
// runs before the external inference pass is invoked, so consumers are
// always notified even if re-inference later produces an identical result.
func (e *Environment) InvalidatePerFunctionCache(qualifiers []string) domain.HandleSet {
	tx := e.table.Open(true, qualifiers)
	triggered, _ := e.table.Execute(tx, nil) // pessimistic transactions never call update
	return triggered
}

// Populate directly stores ann under qualifier, for the recheck driver to
// call once the external inference pass returns its batch of results.
func (e *Environment) Populate(qualifier string, ann Annotation) {
	e.table.Add(qualifier, ann)
}
