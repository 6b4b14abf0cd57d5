package cas

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/RastaKolobar/pyre-check/internal/core/ports"
)

const NodeID graft.ID = "adapter.store"

func init() {
	graft.Register(graft.Node[ports.Store]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Store, error) {
			return NewStore(), nil
		},
	})
}
