// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/RastaKolobar/pyre-check/internal/adapters/cas"
	_ "github.com/RastaKolobar/pyre-check/internal/adapters/config"
	_ "github.com/RastaKolobar/pyre-check/internal/adapters/logger"
	_ "github.com/RastaKolobar/pyre-check/internal/adapters/telemetry"
	_ "github.com/RastaKolobar/pyre-check/internal/adapters/telemetry/progrock"
	_ "github.com/RastaKolobar/pyre-check/internal/adapters/watcher"
	// Register the application components node.
	_ "github.com/RastaKolobar/pyre-check/internal/app"
)
