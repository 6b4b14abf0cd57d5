package ports

import "github.com/RastaKolobar/pyre-check/internal/core/domain"

// ConfigLoader defines the interface for loading the engine's configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	Load(cwd string) (domain.Config, error)
}
