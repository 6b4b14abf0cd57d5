package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/RastaKolobar/pyre-check/internal/adapters/cas"
	"github.com/RastaKolobar/pyre-check/internal/adapters/config"
	"github.com/RastaKolobar/pyre-check/internal/adapters/logger"
	"github.com/RastaKolobar/pyre-check/internal/adapters/telemetry"
	"github.com/RastaKolobar/pyre-check/internal/adapters/telemetry/progrock"
	"github.com/RastaKolobar/pyre-check/internal/adapters/watcher"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
)

// ComponentsNodeID is the unique identifier for the application components
// Graft node: the one node cmd/pyrecheck resolves at startup.
const ComponentsNodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cas.NodeID,
			progrock.NodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.Store](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return build(loader, log, store, tel, tracer, w)
}
