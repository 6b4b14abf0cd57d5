// Package layers implements the generic EnvironmentLayer: one derived,
// memoized fact table stacked on top of the layer beneath it.
package layers

import (
	"context"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
)

// Bridge is the set of functions a concrete layer supplies to the generic
// EnvironmentLayer. K is the layer's Key type, V its Value type, T its
// Trigger type, U the read-only view exposed by the layer beneath.
//
// Go forbids a generic interface method from introducing type parameters
// of its own, so unlike the literal four bridging functions named in the
// spec, FilterUpstreamDependency here returns []T rather than a single
// optional trigger: one upstream descriptor (a whole module's AstParse, for
// instance) naturally fans out to many of this layer's keys, and a
// cardinality-one signature can't express that.
type Bridge[K comparable, V domain.Value, T comparable, U any] interface {
	// KeyToTrigger recovers the trigger that originally produced key. Used
	// by Get on a cache miss.
	KeyToTrigger(key K) T
	// ConvertTrigger maps a trigger to the Table key it populates.
	ConvertTrigger(trigger T) K
	// TriggerToDependency names the DependencyDescriptor this layer
	// registers when it computes trigger, so layers above can depend on it.
	TriggerToDependency(trigger T) domain.DependencyDescriptor
	// FilterUpstreamDependency selects, from a single dependency descriptor
	// triggered in the layer beneath, the triggers in this layer that must
	// be recomputed as a result.
	FilterUpstreamDependency(descriptor domain.DependencyDescriptor) []T
	// ProduceValue computes the value for trigger given the read-only view
	// of the layer beneath. dependency, when non-nil, is the handle that
	// upstream Get calls made during this computation should be attributed
	// to.
	ProduceValue(ctx context.Context, upstream U, collector *domain.Collector, dependency *domain.Handle, trigger T) (V, error)
	// LazyIncremental reports whether this layer invalidates pessimistically
	// (discard without recompute) rather than eagerly recomputing every
	// triggered key during Update.
	LazyIncremental() bool
}
