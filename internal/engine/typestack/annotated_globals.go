package typestack

import (
	"context"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/layers"
)

// AnnotatedGlobalsLayer is the topmost layer in the stack: the inferred or
// declared type of each global, keyed by qualified name. TypeCheckDefine
// handles become consumers of this layer's entries whenever a function
// body reads a global's type during inference.
type AnnotatedGlobalsLayer = layers.Layer[string, TypeOfGlobal, string, *ResolvedGlobalsLayer]

type annotatedGlobalsBridge struct{}

// NewAnnotatedGlobalsLayer constructs the layer over resolved.
func NewAnnotatedGlobalsLayer(
	registry *domain.Registry, resolved *ResolvedGlobalsLayer, sched ports.Scheduler, policy ports.Policy,
) *AnnotatedGlobalsLayer {
	table := domain.NewTableWithCache[string, TypeOfGlobal]()
	return layers.New[string, TypeOfGlobal, string, *ResolvedGlobalsLayer](
		registry, table, resolved, annotatedGlobalsBridge{}, sched, policy,
	)
}

func (b annotatedGlobalsBridge) KeyToTrigger(key string) string       { return key }
func (b annotatedGlobalsBridge) ConvertTrigger(trigger string) string { return trigger }

func (b annotatedGlobalsBridge) TriggerToDependency(trigger string) domain.DependencyDescriptor {
	return domain.NewTypeOfGlobal(trigger)
}

func (b annotatedGlobalsBridge) FilterUpstreamDependency(d domain.DependencyDescriptor) []string {
	if d.Kind != domain.KindResolvedGlobal {
		return nil
	}
	return []string{d.Name.String()}
}

// ProduceValue derives a coarse type name from the resolved classification.
// A real implementation would consult annotations or run inference; this
// stub's job is only to exercise the layer stack's dependency wiring.
func (b annotatedGlobalsBridge) ProduceValue(
	ctx context.Context, upstream *ResolvedGlobalsLayer, collector *domain.Collector, dependency *domain.Handle, trigger string,
) (TypeOfGlobal, error) {
	rg, err := upstream.Get(ctx, collector, dependency, trigger)
	if err != nil {
		return TypeOfGlobal{}, err
	}
	if rg.Kind == "class" {
		return TypeOfGlobal{TypeName: "type[" + trigger + "]"}, nil
	}
	return TypeOfGlobal{TypeName: "Unknown"}, nil
}

func (b annotatedGlobalsBridge) LazyIncremental() bool { return false }
