package typestack

import (
	"context"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/layers"
)

// resolvedGlobalsUpstream bundles the two read views ResolvedGlobalsLayer
// needs: the unannotated globals (for every name) and the class hierarchy
// (for names that turn out to be classes).
type resolvedGlobalsUpstream struct {
	Unannotated *UnannotatedGlobalsLayer
	Classes     *ClassHierarchyLayer
}

// ResolvedGlobalsLayer classifies each qualified name as a class or plain
// variable reference, reading both layers beneath it.
type ResolvedGlobalsLayer = layers.Layer[string, ResolvedGlobal, string, resolvedGlobalsUpstream]

type resolvedGlobalsBridge struct{}

// NewResolvedGlobalsLayer constructs the layer over unannotated and
// classes.
func NewResolvedGlobalsLayer(
	registry *domain.Registry, unannotated *UnannotatedGlobalsLayer, classes *ClassHierarchyLayer,
	sched ports.Scheduler, policy ports.Policy,
) *ResolvedGlobalsLayer {
	table := domain.NewTableWithCache[string, ResolvedGlobal]()
	upstream := resolvedGlobalsUpstream{Unannotated: unannotated, Classes: classes}
	return layers.New[string, ResolvedGlobal, string, resolvedGlobalsUpstream](
		registry, table, upstream, resolvedGlobalsBridge{}, sched, policy,
	)
}

func (b resolvedGlobalsBridge) KeyToTrigger(key string) string       { return key }
func (b resolvedGlobalsBridge) ConvertTrigger(trigger string) string { return trigger }

func (b resolvedGlobalsBridge) TriggerToDependency(trigger string) domain.DependencyDescriptor {
	return domain.NewResolvedGlobal(trigger)
}

// FilterUpstreamDependency re-resolves a name whenever its own unannotated
// entry changes. A changed ClassSummary does not, in this simplified stack,
// retrigger resolution of names that merely reference that class — that
// would need a reverse reference index the stub parser does not build.
func (b resolvedGlobalsBridge) FilterUpstreamDependency(d domain.DependencyDescriptor) []string {
	if d.Kind != domain.KindUnannotatedGlobal {
		return nil
	}
	return []string{d.Name.String()}
}

func (b resolvedGlobalsBridge) ProduceValue(
	ctx context.Context, upstream resolvedGlobalsUpstream, collector *domain.Collector, dependency *domain.Handle, trigger string,
) (ResolvedGlobal, error) {
	ug, err := upstream.Unannotated.Get(ctx, collector, dependency, trigger)
	if err != nil {
		return ResolvedGlobal{}, err
	}
	if ug.IsClass {
		if _, err := upstream.Classes.Get(ctx, collector, dependency, trigger); err != nil {
			return ResolvedGlobal{}, err
		}
		return ResolvedGlobal{Kind: "class"}, nil
	}
	return ResolvedGlobal{Kind: "variable"}, nil
}

func (b resolvedGlobalsBridge) LazyIncremental() bool { return false }
