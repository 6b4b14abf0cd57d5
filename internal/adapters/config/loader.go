// Package config implements ports.ConfigLoader over a YAML file, walking
// upward from the working directory to find it — the same discovery shape
// the teacher's workspace-aware loader used, simplified to a single
// project file rather than a workspace of many.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
)

// Filename is the configuration file FileConfigLoader looks for.
const Filename = "pyre.yaml"

// fileDTO is the YAML-tagged shape of pyre.yaml.
type fileDTO struct {
	SourceRoots       []string `yaml:"sourceRoots"`
	Parallelism       int      `yaml:"parallelism"`
	NoCacheTableSize  int      `yaml:"noCacheTableSize"`
	Chunking          struct {
		MinChunksPerWorker       int `yaml:"minChunksPerWorker"`
		MinChunkSize             int `yaml:"minChunkSize"`
		PreferredChunksPerWorker int `yaml:"preferredChunksPerWorker"`
	} `yaml:"chunking"`
}

// FileConfigLoader implements ports.ConfigLoader by searching upward from
// cwd for Filename, falling back to domain.DefaultConfig if none is found.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a FileConfigLoader that logs discovery decisions
// through log.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: log}
}

// Load searches cwd and every ancestor directory for Filename, parses the
// first one found, and fills in any unset field from domain.DefaultConfig.
// No match at all yields the default configuration rooted at cwd.
func (l *FileConfigLoader) Load(cwd string) (domain.Config, error) {
	path, found := discover(cwd, Filename)
	if !found {
		if l.logger != nil {
			l.logger.Debug("no config file found, using defaults", "cwd", cwd)
		}
		cfg := domain.DefaultConfig()
		cfg.ProjectRoot = cwd
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the orchestrator's own cwd
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "path", path)
	}

	var dto fileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg := domain.DefaultConfig()
	cfg.ProjectRoot = filepath.Dir(path)
	if len(dto.SourceRoots) > 0 {
		cfg.SourceRoots = dto.SourceRoots
	}
	if dto.Parallelism > 0 {
		cfg.Parallelism = dto.Parallelism
	}
	if dto.NoCacheTableSize > 0 {
		cfg.NoCacheTableSize = dto.NoCacheTableSize
	}
	if dto.Chunking.MinChunksPerWorker > 0 {
		cfg.Chunking.MinChunksPerWorker = dto.Chunking.MinChunksPerWorker
	}
	if dto.Chunking.MinChunkSize > 0 {
		cfg.Chunking.MinChunkSize = dto.Chunking.MinChunkSize
	}
	if dto.Chunking.PreferredChunksPerWorker > 0 {
		cfg.Chunking.PreferredChunksPerWorker = dto.Chunking.PreferredChunksPerWorker
	}

	if l.logger != nil {
		l.logger.Debug("loaded config file", "path", path)
	}
	return cfg, nil
}

// discover walks upward from dir looking for name, stopping at the
// filesystem root.
func discover(dir, name string) (string, bool) {
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
