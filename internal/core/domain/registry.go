package domain

import "sync"

// Handle is a small, stable token standing in for a DependencyDescriptor.
// Handles are cheap to hash, compare, and carry through a Table's consumer
// sets — the framework never threads a full DependencyDescriptor once a
// Handle has been minted for it.
type Handle int32

// HandleSet is the framework's recurring shape: a deduplicated collection of
// RegisteredDependency handles, as returned by a Transaction diff or a
// collected_map_reduce merge.
type HandleSet map[Handle]struct{}

// Union returns a new HandleSet containing every handle in s and other.
func (s HandleSet) Union(other HandleSet) HandleSet {
	out := make(HandleSet, len(s)+len(other))
	for h := range s {
		out[h] = struct{}{}
	}
	for h := range other {
		out[h] = struct{}{}
	}
	return out
}

// Registry interns DependencyDescriptors into stable Handles. It is the one
// process-wide mutable structure the framework requires (see spec §5):
// identical descriptors always yield identical handles, and every handle it
// has ever issued resolves back to its descriptor for the registry's entire
// lifetime. Register is safe for concurrent callers; a single *Registry
// instance is constructed once (in internal/app's builder) and threaded explicitly
// through every layer and Table rather than held in a package-level
// variable, so tests can build isolated registries via NewRegistry.
type Registry struct {
	mu      sync.Mutex
	byDescr map[DependencyDescriptor]Handle
	byHand  []DependencyDescriptor
}

// NewRegistry creates an empty registry. Use one instance per process (or
// per test) — handles from different registries are not interchangeable.
func NewRegistry() *Registry {
	return &Registry{
		byDescr: make(map[DependencyDescriptor]Handle),
	}
}

// Register idempotently interns descriptor, returning its stable handle.
// Two concurrent registrations of equal descriptors yield equal handles.
func (r *Registry) Register(descriptor DependencyDescriptor) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.byDescr[descriptor]; ok {
		return h
	}

	h := Handle(len(r.byHand))
	r.byHand = append(r.byHand, descriptor)
	r.byDescr[descriptor] = h
	return h
}

// GetKey resolves a handle back to its descriptor. Total over every handle
// this registry has issued; an unknown handle is a programming error.
func (r *Registry) GetKey(h Handle) (DependencyDescriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if int(h) < 0 || int(h) >= len(r.byHand) {
		return DependencyDescriptor{}, ErrUnknownHandle
	}
	return r.byHand[h], nil
}

// Size returns the number of distinct descriptors interned so far. Exposed
// for the `stats` CLI command's cache/registry introspection.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byHand)
}
