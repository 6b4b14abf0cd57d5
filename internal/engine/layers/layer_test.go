package layers_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/layers"
	"github.com/RastaKolobar/pyre-check/internal/engine/scheduler"
)

// testValue is the minimal domain.Value used across these tests.
type testValue int

func (v testValue) Equal(other domain.Value) bool {
	o, ok := other.(testValue)
	return ok && o == v
}

func (v testValue) String() string { return fmt.Sprintf("%d", int(v)) }

// testBridge fans a module's AstParse descriptor out to every key declared
// in that module — the 1:N generalization of filter_upstream_dependency.
type testBridge struct {
	mu         sync.Mutex
	moduleKeys map[string][]string
	values     map[string]testValue
	calls      map[string]int
}

func newTestBridge() *testBridge {
	return &testBridge{
		moduleKeys: make(map[string][]string),
		values:     make(map[string]testValue),
		calls:      make(map[string]int),
	}
}

func (b *testBridge) KeyToTrigger(key string) string     { return key }
func (b *testBridge) ConvertTrigger(trigger string) string { return trigger }

func (b *testBridge) TriggerToDependency(trigger string) domain.DependencyDescriptor {
	return domain.NewLayerPrivate("test", trigger)
}

func (b *testBridge) FilterUpstreamDependency(d domain.DependencyDescriptor) []string {
	if d.Kind != domain.KindAstParse {
		return nil
	}
	return b.moduleKeys[d.Name.String()]
}

func (b *testBridge) ProduceValue(
	_ context.Context, _ struct{}, _ *domain.Collector, _ *domain.Handle, trigger string,
) (testValue, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls[trigger]++
	return b.values[trigger], nil
}

func (b *testBridge) LazyIncremental() bool { return false }

func (b *testBridge) callCount(trigger string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[trigger]
}

func newLayer(bridge *testBridge) (*layers.Layer[string, testValue, string, struct{}], *domain.Registry) {
	registry := domain.NewRegistry()
	table := domain.NewTableWithCache[string, testValue]()
	sched := scheduler.New(2)
	policy := ports.FixedChunkCountPolicy(1, 100, 5)
	return layers.New[string, testValue, string, struct{}](registry, table, struct{}{}, bridge, sched, policy), registry
}

func TestLayer_Get_MemoizesAcrossCalls(t *testing.T) {
	bridge := newTestBridge()
	bridge.values["m.a"] = testValue(1)
	l, _ := newLayer(bridge)

	v1, err := l.Get(context.Background(), nil, nil, "m.a")
	require.NoError(t, err)
	v2, err := l.Get(context.Background(), nil, nil, "m.a")
	require.NoError(t, err)

	assert.Equal(t, testValue(1), v1)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, bridge.callCount("m.a"))
}

func TestLayer_Update_TriggersConsumerOnChangedValue(t *testing.T) {
	bridge := newTestBridge()
	bridge.moduleKeys["m"] = []string{"m.a", "m.b"}
	bridge.values["m.a"] = testValue(1)
	bridge.values["m.b"] = testValue(2)
	l, registry := newLayer(bridge)

	consumer := domain.Handle(999)
	_, err := l.Get(context.Background(), nil, &consumer, "m.a")
	require.NoError(t, err)
	_, err = l.Get(context.Background(), nil, &consumer, "m.b")
	require.NoError(t, err)

	astHandle := registry.Register(domain.NewAstParse("m"))
	upstream := domain.NewBaseUpdateResult(domain.HandleSet{astHandle: {}}, []string{"m"})

	bridge.values["m.a"] = testValue(100) // m.a really changes
	// m.b recomputes to the same value — equality short-circuit.

	result, err := l.Update(context.Background(), upstream)
	require.NoError(t, err)

	assert.Contains(t, result.Triggered(), consumer)
	assert.Equal(t, 2, bridge.callCount("m.a"))
	assert.Equal(t, 2, bridge.callCount("m.b"))

	newVal, err := l.Get(context.Background(), nil, nil, "m.a")
	require.NoError(t, err)
	assert.Equal(t, testValue(100), newVal)
}

func TestLayer_Update_EmptyWhenNoUpstreamMatches(t *testing.T) {
	bridge := newTestBridge()
	l, registry := newLayer(bridge)

	otherHandle := registry.Register(domain.NewUnannotatedGlobal("unrelated"))
	upstream := domain.NewBaseUpdateResult(domain.HandleSet{otherHandle: {}}, nil)

	result, err := l.Update(context.Background(), upstream)
	require.NoError(t, err)
	assert.Empty(t, result.Triggered())
}

func TestLayer_Update_LazyIncrementalDiscardsWithoutRecompute(t *testing.T) {
	bridge := newTestBridge()
	bridge.moduleKeys["m"] = []string{"m.a"}
	bridge.values["m.a"] = testValue(1)

	registry := domain.NewRegistry()
	table := domain.NewTableWithCache[string, testValue]()
	sched := scheduler.New(2)
	policy := ports.FixedChunkCountPolicy(1, 100, 5)
	l := layers.New[string, testValue, string, struct{}](registry, table, struct{}{}, lazyBridge{bridge}, sched, policy)

	consumer := domain.Handle(1)
	_, err := l.Get(context.Background(), nil, &consumer, "m.a")
	require.NoError(t, err)
	require.Equal(t, 1, bridge.callCount("m.a"))

	astHandle := registry.Register(domain.NewAstParse("m"))
	upstream := domain.NewBaseUpdateResult(domain.HandleSet{astHandle: {}}, []string{"m"})

	result, err := l.Update(context.Background(), upstream)
	require.NoError(t, err)
	assert.Contains(t, result.Triggered(), consumer)
	assert.Equal(t, 1, bridge.callCount("m.a"), "pessimistic invalidation must not recompute")
}

// lazyBridge wraps testBridge to flip LazyIncremental to true without
// duplicating the rest of the bridge's behavior.
type lazyBridge struct {
	*testBridge
}

func (lazyBridge) LazyIncremental() bool { return true }
