package domain

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheBackend abstracts the two storage strategies a Table can use for its
// Key->Value map. Both variants are identical in contract: a miss is always
// safe (the layer above simply recomputes), so correctness never depends on
// which one a layer picks — only memory/latency tradeoffs do.
type cacheBackend[K comparable, V Value] interface {
	get(k K) (V, bool)
	add(k K, v V)
	remove(k K)
}

// mapBackend never evicts. This is the WithCache variant: fast repeated
// reads, unbounded memory growth.
type mapBackend[K comparable, V Value] struct {
	m map[K]V
}

func (b *mapBackend[K, V]) get(k K) (V, bool) { v, ok := b.m[k]; return v, ok }
func (b *mapBackend[K, V]) add(k K, v V)      { b.m[k] = v }
func (b *mapBackend[K, V]) remove(k K)        { delete(b.m, k) }

// lruBackend evicts least-recently-used entries once full. This is the
// NoCache variant: memory-lean, at the cost of occasional spurious misses
// that the layer above recomputes transparently.
type lruBackend[K comparable, V Value] struct {
	c *lru.Cache[K, V]
}

func (b *lruBackend[K, V]) get(k K) (V, bool) { return b.c.Get(k) }
func (b *lruBackend[K, V]) add(k K, v V)      { b.c.Add(k, v) }
func (b *lruBackend[K, V]) remove(k K)        { b.c.Remove(k) }

// Table is a per-layer shared Key->Value store with per-key dependent-set
// tracking and transactional invalidation. It has no notion of how a Value
// is produced — that lives in the EnvironmentLayer above it — Table only
// remembers what was last stored, who read it, and diffs old against new
// under a Transaction.
type Table[K comparable, V Value] struct {
	mu        sync.RWMutex
	cache     cacheBackend[K, V]
	consumers map[K]HandleSet
}

// NewTableWithCache creates a Table backed by an unbounded map.
func NewTableWithCache[K comparable, V Value]() *Table[K, V] {
	return &Table[K, V]{
		cache:     &mapBackend[K, V]{m: make(map[K]V)},
		consumers: make(map[K]HandleSet),
	}
}

// NewTableNoCache creates a Table backed by a bounded LRU of the given size.
func NewTableNoCache[K comparable, V Value](size int) *Table[K, V] {
	c, _ := lru.New[K, V](size) // size > 0 is guaranteed by callers; lru.New only errors on size <= 0
	return &Table[K, V]{
		cache:     &lruBackend[K, V]{c: c},
		consumers: make(map[K]HandleSet),
	}
}

// Get returns the cached value for key, if present. When dependency is
// non-nil, it is recorded as a consumer of key — a later invalidation of
// key's value will then include dependency in the returned triggered set —
// and touched against collector, if one is running.
func (t *Table[K, V]) Get(collector *Collector, dependency *Handle, key K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.cache.get(key)
	if ok && dependency != nil {
		t.recordConsumerLocked(key, *dependency)
		collector.Touch(*dependency)
	}
	return v, ok
}

// Add unconditionally inserts or replaces key's value. Only valid inside an
// open transaction's update closure, repopulating a key that was just
// invalidated.
func (t *Table[K, V]) Add(key K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cache.add(key, value)
}

func (t *Table[K, V]) recordConsumerLocked(key K, h Handle) {
	set, ok := t.consumers[key]
	if !ok {
		set = make(HandleSet)
		t.consumers[key] = set
	}
	set[h] = struct{}{}
}

// consumersLocked returns a snapshot of key's recorded dependents. Caller
// must hold t.mu.
func (t *Table[K, V]) consumersLocked(key K) HandleSet {
	set, ok := t.consumers[key]
	if !ok {
		return nil
	}
	out := make(HandleSet, len(set))
	for h := range set {
		out[h] = struct{}{}
	}
	return out
}

// Transaction is a scoped invalidation of a key set, staged by Open and
// committed atomically by Execute.
type Transaction[K comparable] struct {
	keys        []K
	pessimistic bool
}

// Open stages an invalidation of keys. Pessimistic transactions drop the
// values (and report their recorded dependents as triggered) without
// recomputing; non-pessimistic transactions expect the update closure
// passed to Execute to repopulate every key via Add.
func (t *Table[K, V]) Open(pessimistic bool, keys []K) *Transaction[K] {
	return &Transaction[K]{keys: keys, pessimistic: pessimistic}
}

// AddToTransaction appends more invalidation intents to an open,
// non-pessimistic transaction.
func (tx *Transaction[K]) AddToTransaction(keys ...K) {
	tx.keys = append(tx.keys, keys...)
}

// Execute commits tx: pessimistic transactions invalidate eagerly; otherwise
// it snapshots old values and dependents, deletes the staged keys, runs
// update() (which must call Add for every staged key), then diffs old
// against new per key. Keys whose value changed contribute their old
// dependents to the returned HandleSet and have their consumer set cleared
// (stale consumers are harmless per spec, but clearing avoids needlessly
// re-triggering removed readers on the next round). Keys whose recomputed
// value is equal to the old one keep their consumer set untouched — the
// "equality short-circuit" that prevents unnecessary cascading.
//
// On error, the Table is restored to its pre-update state and the error is
// returned unwrapped so callers can distinguish a producer failure from a
// framework bug.
func (t *Table[K, V]) Execute(tx *Transaction[K], update func() error) (HandleSet, error) {
	if tx.pessimistic {
		return t.executePessimistic(tx), nil
	}
	return t.executeRecompute(tx, update)
}

func (t *Table[K, V]) executePessimistic(tx *Transaction[K]) HandleSet {
	t.mu.Lock()
	defer t.mu.Unlock()

	triggered := make(HandleSet)
	for _, k := range tx.keys {
		for h := range t.consumers[k] {
			triggered[h] = struct{}{}
		}
		t.cache.remove(k)
		delete(t.consumers, k)
	}
	return triggered
}

func (t *Table[K, V]) executeRecompute(tx *Transaction[K], update func() error) (HandleSet, error) {
	t.mu.Lock()
	oldValues := make(map[K]V, len(tx.keys))
	oldPresent := make(map[K]bool, len(tx.keys))
	oldConsumers := make(map[K]HandleSet, len(tx.keys))
	for _, k := range tx.keys {
		if v, ok := t.cache.get(k); ok {
			oldValues[k] = v
			oldPresent[k] = true
		}
		oldConsumers[k] = t.consumersLocked(k)
		t.cache.remove(k)
	}
	t.mu.Unlock()

	if err := update(); err != nil {
		// Restore pre-update state: the transaction aborts entirely.
		t.mu.Lock()
		for _, k := range tx.keys {
			if oldPresent[k] {
				t.cache.add(k, oldValues[k])
			}
		}
		t.mu.Unlock()
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	triggered := make(HandleSet)
	for _, k := range tx.keys {
		newValue, newOK := t.cache.get(k)
		changed := oldPresent[k] != newOK
		if oldPresent[k] && newOK && !oldValues[k].Equal(newValue) {
			changed = true
		}
		if changed {
			for h := range oldConsumers[k] {
				triggered[h] = struct{}{}
			}
			delete(t.consumers, k)
		} else {
			t.consumers[k] = oldConsumers[k]
		}
	}
	return triggered, nil
}
