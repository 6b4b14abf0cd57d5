package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"

	"github.com/RastaKolobar/pyre-check/internal/core/ports"
)

// NodeID is the unique identifier for the file watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return NewWatcher()
		},
	})
}

// DefaultDebounceWindow is how long the watch subcommand waits for a burst
// of edits to settle before calling recheck. The Debouncer itself is built
// per invocation, not via this node, since its callback closes over a
// specific recheck.Driver.
const DefaultDebounceWindow = 200 * time.Millisecond
