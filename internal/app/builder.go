package app

import (
	"os"

	"go.trai.ch/zerr"

	"github.com/RastaKolobar/pyre-check/internal/adapters/inferstub"
	"github.com/RastaKolobar/pyre-check/internal/adapters/parserstub"
	"github.com/RastaKolobar/pyre-check/internal/adapters/procmem"
	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/recheck"
	"github.com/RastaKolobar/pyre-check/internal/engine/scheduler"
	"github.com/RastaKolobar/pyre-check/internal/engine/typeenv"
	"github.com/RastaKolobar/pyre-check/internal/engine/typestack"
)

// Components holds every long-lived object a cmd/pyrecheck command needs,
// assembled once at startup by the Components Graft node.
type Components struct {
	App       *App
	Logger    ports.Logger
	Config    domain.Config
	Watcher   ports.Watcher
	Telemetry ports.Telemetry
	Tracer    ports.Tracer
}

// build assembles a Components from the adapters Graft has already
// resolved. The engine's layer stack, registry, and scheduler are plain
// values rather than Graft nodes of their own: they are sized from
// configuration (parallelism, chunking policy, NoCache table size) that is
// only known once loader.Load has run, not swappable implementations a
// node could stand in for.
func build(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.Store,
	tel ports.Telemetry,
	tracer ports.Tracer,
	w ports.Watcher,
) (*Components, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	cfg, err := loader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	registry := domain.NewRegistry()
	parser := parserstub.New(registry)
	sched := scheduler.New(cfg.Parallelism)
	policy := ports.FixedChunkCountPolicy(
		cfg.Chunking.MinChunksPerWorker,
		cfg.Chunking.MinChunkSize,
		cfg.Chunking.PreferredChunksPerWorker,
	)

	stack := typestack.New(registry, parser, sched, policy, cfg.NoCacheTableSize)
	env := typeenv.New(registry)

	errs, err := loadErrorTable(store, cfg.ProjectRoot)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load persisted diagnostics")
	}

	driver := recheck.New(
		registry,
		sched,
		stack,
		env,
		errs,
		inferstub.New(),
		inferstub.NewPostprocessing(),
		procmem.New(),
	)

	a := New(driver, store, log, tel, tracer, cfg)

	return &Components{
		App:       a,
		Logger:    log,
		Config:    cfg,
		Watcher:   w,
		Telemetry: tel,
		Tracer:    tracer,
	}, nil
}
