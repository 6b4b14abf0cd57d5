package typestack

import (
	"context"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/layers"
)

// UnannotatedGlobalsLayer is the bottommost real EnvironmentLayer, sitting
// directly on top of the parser layer. Its keys are qualified names; its
// trigger type is also a qualified name (KeyToTrigger/ConvertTrigger are
// both identity), so upstream AstParse(module) descriptors must be fanned
// out to every name the module declares.
type UnannotatedGlobalsLayer = layers.Layer[string, UnannotatedGlobal, string, ports.ParserLayer]

// unannotatedGlobalsBridge implements layers.Bridge for the
// unannotated-globals layer. It keeps its own reference to the parser layer
// so FilterUpstreamDependency can fan a module's AstParse descriptor out to
// every qualified name the module declares — the Bridge interface itself
// only receives the descriptor, not the upstream read view.
type unannotatedGlobalsBridge struct {
	parser ports.ParserLayer
}

// NewUnannotatedGlobalsLayer constructs the layer over parser, using an
// unbounded cache: every module's globals are read on nearly every lookup
// downstream, so eviction would just cost a recompute for no real memory
// benefit at the scale this engine targets.
func NewUnannotatedGlobalsLayer(
	registry *domain.Registry, parser ports.ParserLayer, sched ports.Scheduler, policy ports.Policy,
) *UnannotatedGlobalsLayer {
	table := domain.NewTableWithCache[string, UnannotatedGlobal]()
	bridge := unannotatedGlobalsBridge{parser: parser}
	return layers.New[string, UnannotatedGlobal, string, ports.ParserLayer](registry, table, parser, bridge, sched, policy)
}

func (b unannotatedGlobalsBridge) KeyToTrigger(key string) string       { return key }
func (b unannotatedGlobalsBridge) ConvertTrigger(trigger string) string { return trigger }

func (b unannotatedGlobalsBridge) TriggerToDependency(trigger string) domain.DependencyDescriptor {
	return domain.NewUnannotatedGlobal(trigger)
}

// FilterUpstreamDependency fans an AstParse(module) descriptor out to every
// qualified name the module currently declares. This is the canonical case
// of the 1:N generalization: one module edit invalidates every global it
// declares, not just one.
func (b unannotatedGlobalsBridge) FilterUpstreamDependency(d domain.DependencyDescriptor) []string {
	if d.Kind != domain.KindAstParse {
		return nil
	}
	return b.parser.ModuleDeclarations(d.Name.String())
}

// ProduceValue looks trigger up as a function definition first; anything
// else declared at module scope (classes, bare assignments) is treated as a
// non-function global. ports.ParserLayer does not say whether a declaration
// is a class, so IsClass comes from looksLikeClass: a name whose last
// segment starts with an uppercase letter counts as a class.
func (b unannotatedGlobalsBridge) ProduceValue(
	_ context.Context, upstream ports.ParserLayer, _ *domain.Collector, _ *domain.Handle, trigger string,
) (UnannotatedGlobal, error) {
	if def, ok := upstream.GetFunctionDefinition(trigger); ok {
		return UnannotatedGlobal{Module: def.Module, IsClass: false}, nil
	}
	return UnannotatedGlobal{Module: moduleOf(trigger), IsClass: looksLikeClass(trigger)}, nil
}

func (b unannotatedGlobalsBridge) LazyIncremental() bool { return false }

// moduleOf strips the final qualifier segment off a dotted qualified name.
func moduleOf(qualified string) string {
	idx := lastDot(qualified)
	if idx < 0 {
		return qualified
	}
	return qualified[:idx]
}

func lastDot(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return i
		}
	}
	return -1
}

// looksLikeClass applies the scanner's own convention: class names start
// with an uppercase letter. This is a stub heuristic, not a real classifier.
func looksLikeClass(qualified string) bool {
	idx := lastDot(qualified)
	name := qualified[idx+1:]
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}
