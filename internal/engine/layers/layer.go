package layers

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/mapreduce"
)

// Layer is the generic EnvironmentLayer: a Table backed by a Bridge, sitting
// on top of the read-only view U exposed by the layer beneath.
type Layer[K comparable, V domain.Value, T comparable, U any] struct {
	registry *domain.Registry
	table    *domain.Table[K, V]
	upstream U
	bridge   Bridge[K, V, T, U]
	sched    ports.Scheduler
	policy   ports.Policy
}

// New constructs a Layer from its owned Table, the read view of the layer
// beneath, and the bridge that ties the two together.
func New[K comparable, V domain.Value, T comparable, U any](
	registry *domain.Registry,
	table *domain.Table[K, V],
	upstream U,
	bridge Bridge[K, V, T, U],
	sched ports.Scheduler,
	policy ports.Policy,
) *Layer[K, V, T, U] {
	return &Layer[K, V, T, U]{
		registry: registry,
		table:    table,
		upstream: upstream,
		bridge:   bridge,
		sched:    sched,
		policy:   policy,
	}
}

// UpstreamReadView exposes the layer beneath, for layers above this one to
// hold onto.
func (l *Layer[K, V, T, U]) UpstreamReadView() U {
	return l.upstream
}

// Get looks up key, computing and storing it via ProduceValue on a miss.
// dependency, when non-nil, is recorded as a consumer of key whether key was
// cached or just computed. The upstream reads ProduceValue makes on a miss
// are attributed to key's own registered handle, not to dependency.
func (l *Layer[K, V, T, U]) Get(ctx context.Context, collector *domain.Collector, dependency *domain.Handle, key K) (V, error) {
	if v, ok := l.table.Get(collector, dependency, key); ok {
		return v, nil
	}

	trigger := l.bridge.KeyToTrigger(key)
	handle := l.registry.Register(l.bridge.TriggerToDependency(trigger))

	v, err := l.bridge.ProduceValue(ctx, l.upstream, collector, &handle, trigger)
	if err != nil {
		var zero V
		return zero, zerr.With(zerr.Wrap(err, domain.ErrTransientProducerFailure.Error()), "key", keyString(key))
	}

	l.table.Add(key, v)
	if dependency != nil {
		l.table.Get(collector, dependency, key) // records dependency as a consumer of the stored value
	}
	return v, nil
}

// PeekCached returns key's cached value without recording a consumer and
// without recomputing on a miss. Bridges above this layer use it inside
// FilterUpstreamDependency, which runs synchronously during trigger-map
// construction and has no handle to record a dependency against yet.
func (l *Layer[K, V, T, U]) PeekCached(key K) (V, bool) {
	return l.table.Get(nil, nil, key)
}

func keyString(key any) string {
	type stringer interface{ String() string }
	if s, ok := key.(stringer); ok {
		return s.String()
	}
	return ""
}

type triggerPair[T comparable] struct {
	trigger T
	handle  domain.Handle
}

// Update runs the full algorithm in §4.3 step 2 onward: build the trigger
// map from every handle in upstreamResult's chain, open a transaction over
// the corresponding keys, and either invalidate pessimistically or
// recompute every trigger in parallel via collected_map_reduce.
func (l *Layer[K, V, T, U]) Update(ctx context.Context, upstreamResult *domain.UpdateResult) (*domain.UpdateResult, error) {
	triggerMap, order, err := l.buildTriggerMap(upstreamResult)
	if err != nil {
		return nil, err
	}

	keys := make([]K, len(order))
	for i, t := range order {
		keys[i] = l.bridge.ConvertTrigger(t)
	}

	tx := l.table.Open(l.bridge.LazyIncremental(), keys)

	var triggered domain.HandleSet
	if l.bridge.LazyIncremental() {
		triggered, err = l.table.Execute(tx, func() error { return nil })
	} else {
		triggered, err = l.table.Execute(tx, func() error {
			return l.recomputeAll(ctx, order, triggerMap)
		})
	}
	if err != nil {
		return nil, err
	}

	return domain.NewUpdateResult(triggered, upstreamResult), nil
}

// buildTriggerMap implements §4.3 step 2: for every handle across the
// entire upstream chain, apply FilterUpstreamDependency and keep the first
// handle that produces each distinct trigger.
func (l *Layer[K, V, T, U]) buildTriggerMap(upstreamResult *domain.UpdateResult) (map[T]domain.Handle, []T, error) {
	triggerMap := make(map[T]domain.Handle)
	var order []T

	for _, set := range upstreamResult.AllTriggeredDependencies() {
		for h := range set {
			descriptor, err := l.registry.GetKey(h)
			if err != nil {
				return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrInconsistentUpstream.Error()), "handle", int32(h))
			}
			for _, t := range l.bridge.FilterUpstreamDependency(descriptor) {
				if _, exists := triggerMap[t]; exists {
					continue
				}
				triggerMap[t] = h
				order = append(order, t)
			}
		}
	}

	return triggerMap, order, nil
}

func (l *Layer[K, V, T, U]) recomputeAll(ctx context.Context, order []T, triggerMap map[T]domain.Handle) error {
	pairs := make([]triggerPair[T], len(order))
	for i, t := range order {
		pairs[i] = triggerPair[T]{trigger: t, handle: triggerMap[t]}
	}

	_, _, err := mapreduce.CollectedMapReduce(
		ctx,
		l.sched,
		l.policy,
		func(ctx context.Context, p triggerPair[T], collector *domain.Collector) (struct{}, error) {
			h := p.handle
			v, err := l.bridge.ProduceValue(ctx, l.upstream, collector, &h, p.trigger)
			if err != nil {
				return struct{}{}, err
			}
			l.table.Add(l.bridge.ConvertTrigger(p.trigger), v)
			return struct{}{}, nil
		},
		func(acc struct{}, local struct{}) struct{} { return acc },
		pairs,
		struct{}{},
	)
	if err != nil {
		return zerr.Wrap(err, domain.ErrTransientProducerFailure.Error())
	}
	return nil
}
