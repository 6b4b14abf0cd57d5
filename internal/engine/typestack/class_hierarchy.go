package typestack

import (
	"context"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/layers"
)

// ClassHierarchyLayer resolves each qualified name's base-class summary,
// reading the unannotated-globals layer beneath it.
type ClassHierarchyLayer = layers.Layer[string, ClassSummary, string, *UnannotatedGlobalsLayer]

type classHierarchyBridge struct {
	unannotated *UnannotatedGlobalsLayer
}

// NewClassHierarchyLayer constructs the layer over unannotated, using a
// bounded cache sized by noCacheSize: class summaries are read far less
// often than raw globals, so eviction is an acceptable tradeoff here.
func NewClassHierarchyLayer(
	registry *domain.Registry, unannotated *UnannotatedGlobalsLayer, sched ports.Scheduler, policy ports.Policy, noCacheSize int,
) *ClassHierarchyLayer {
	table := domain.NewTableNoCache[string, ClassSummary](noCacheSize)
	bridge := classHierarchyBridge{unannotated: unannotated}
	return layers.New[string, ClassSummary, string, *UnannotatedGlobalsLayer](registry, table, unannotated, bridge, sched, policy)
}

func (b classHierarchyBridge) KeyToTrigger(key string) string       { return key }
func (b classHierarchyBridge) ConvertTrigger(trigger string) string { return trigger }

func (b classHierarchyBridge) TriggerToDependency(trigger string) domain.DependencyDescriptor {
	return domain.NewClassSummary(trigger)
}

// FilterUpstreamDependency only re-derives a class summary for the exact
// name whose unannotated-global entry changed; unlike the layer beneath, no
// fan-out is needed here since UnannotatedGlobal descriptors already name a
// single qualified name.
func (b classHierarchyBridge) FilterUpstreamDependency(d domain.DependencyDescriptor) []string {
	if d.Kind != domain.KindUnannotatedGlobal {
		return nil
	}
	name := d.Name.String()
	ug, ok := b.unannotated.PeekCached(name)
	if !ok || !ug.IsClass {
		return nil
	}
	return []string{name}
}

// ProduceValue only ever runs for triggers FilterUpstreamDependency already
// confirmed are classes, so it always returns a (possibly empty) summary
// rather than erroring on a non-class name.
func (b classHierarchyBridge) ProduceValue(
	ctx context.Context, upstream *UnannotatedGlobalsLayer, collector *domain.Collector, dependency *domain.Handle, trigger string,
) (ClassSummary, error) {
	ug, err := upstream.Get(ctx, collector, dependency, trigger)
	if err != nil {
		return ClassSummary{}, err
	}
	if !ug.IsClass {
		return ClassSummary{}, nil
	}
	// Base-list extraction needs a real AST; the stub parser records only
	// the class's name, so every class summarizes to an empty base list.
	return ClassSummary{Bases: nil}, nil
}

func (b classHierarchyBridge) LazyIncremental() bool { return false }
