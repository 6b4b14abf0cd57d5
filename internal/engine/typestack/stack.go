package typestack

import (
	"context"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/scheduler"
)

// Stack owns the four EnvironmentLayer instances between the parser layer
// and the type environment, and knows how to cascade one parser update
// through all of them in order.
type Stack struct {
	Parser      ports.ParserLayer
	Unannotated *UnannotatedGlobalsLayer
	Classes     *ClassHierarchyLayer
	Resolved    *ResolvedGlobalsLayer
	Annotated   *AnnotatedGlobalsLayer

	policy ports.Policy
}

// New builds every layer in the stack over parser, sharing one scheduler,
// chunking policy, and dependency registry throughout.
func New(registry *domain.Registry, parser ports.ParserLayer, sched ports.Scheduler, policy ports.Policy, noCacheSize int) *Stack {
	unannotated := NewUnannotatedGlobalsLayer(registry, parser, sched, policy)
	classes := NewClassHierarchyLayer(registry, unannotated, sched, policy, noCacheSize)
	resolved := NewResolvedGlobalsLayer(registry, unannotated, classes, sched, policy)
	annotated := NewAnnotatedGlobalsLayer(registry, resolved, sched, policy)
	return &Stack{Parser: parser, Unannotated: unannotated, Classes: classes, Resolved: resolved, Annotated: annotated, policy: policy}
}

// NewForTesting is create_for_testing: a Stack built from the same New
// wiring but over a single-worker scheduler and a chunking policy that
// collapses every batch to one chunk, so tests get deterministic ordering
// without threading a scheduler and policy through every call site.
func NewForTesting(registry *domain.Registry, parser ports.ParserLayer) *Stack {
	return New(registry, parser, scheduler.New(1), ports.FixedChunkCountPolicy(1, 1, 1), 4096)
}

// AstEnvironment returns the read view of the layer at the bottom of the
// stack, the one every derived layer is ultimately built over.
func (s *Stack) AstEnvironment() ports.ParserLayer {
	return s.Parser
}

// Configuration returns the chunking policy every layer in the stack was
// built with.
func (s *Stack) Configuration() ports.Policy {
	return s.policy
}

// derivedLayerNames are the ports.Store layer names Store/Load iterate,
// bottom-up, matching the order UpdateAll cascades in.
var derivedLayerNames = []string{"unannotated", "classes", "resolved", "annotated"}

// Store persists the non-tabular state of every derived layer under root,
// delegating to store one layer name at a time as §4.6 describes. None of
// the four layers here carries state outside its Table, and a Table is
// explicitly excluded from ports.Store's contract (it is reconstituted by
// a fresh parse, not deserialized) — so each call below is a no-op today,
// kept so a layer that starts accumulating non-tabular state later has
// a slot to save into without another stack-level change.
func (s *Stack) Store(store ports.Store, root string) error {
	for _, name := range derivedLayerNames {
		if err := store.Save(root, name, nil); err != nil {
			return err
		}
	}
	return nil
}

// Load restores what Store most recently wrote for every derived layer
// under root. Symmetric no-op today, for the same reason Store is.
func (s *Stack) Load(store ports.Store, root string) error {
	for _, name := range derivedLayerNames {
		if _, _, err := store.Load(root, name); err != nil {
			return err
		}
	}
	return nil
}

// TypeOfGlobal implements ports.GlobalReader, giving the external
// inference pass attributed read access to the top of the layer stack
// without exposing any layer internals.
func (s *Stack) TypeOfGlobal(ctx context.Context, collector *domain.Collector, dependency *domain.Handle, qualifiedName string) (string, bool, error) {
	v, err := s.Annotated.Get(ctx, collector, dependency, qualifiedName)
	if err != nil {
		return "", false, err
	}
	return v.TypeName, true, nil
}

// UpdateAll cascades a parser-layer UpdateResult through every layer in
// order, returning the topmost UpdateResult. Its AllTriggeredDependencies
// is the full bottom-first chain the recheck driver walks to find
// TypeCheckDefine triggers.
func (s *Stack) UpdateAll(ctx context.Context, parserResult *domain.UpdateResult) (*domain.UpdateResult, error) {
	r1, err := s.Unannotated.Update(ctx, parserResult)
	if err != nil {
		return nil, err
	}
	r2, err := s.Classes.Update(ctx, r1)
	if err != nil {
		return nil, err
	}
	r3, err := s.Resolved.Update(ctx, r2)
	if err != nil {
		return nil, err
	}
	return s.Annotated.Update(ctx, r3)
}
