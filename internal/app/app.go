// Package app wires the recheck engine into something a CLI can drive: a
// full scan over configured source roots, an explicit-path recheck for the
// watch loop, and persistence of the diagnostic table across runs.
package app

import (
	"context"
	"io/fs"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.trai.ch/zerr"

	"github.com/RastaKolobar/pyre-check/internal/adapters/watcher"
	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/recheck"
)

// App is the orchestration seam between a CLI command and the recheck
// engine: it knows how to find source files, how to run a recheck, and how
// to persist the error table between invocations.
type App struct {
	driver    *recheck.Driver
	store     ports.Store
	logger    ports.Logger
	telemetry ports.Telemetry
	tracer    ports.Tracer
	config    domain.Config
}

// New creates an App from its collaborators.
func New(driver *recheck.Driver, store ports.Store, log ports.Logger, tel ports.Telemetry, tracer ports.Tracer, cfg domain.Config) *App {
	return &App{driver: driver, store: store, logger: log, telemetry: tel, tracer: tracer, config: cfg}
}

// Config returns the configuration this App was built from.
func (a *App) Config() domain.Config {
	return a.config
}

// Check walks every configured source root for .py files and rechecks the
// whole set, as if every file had just changed. Used for the initial scan
// before a watch loop starts, or for a one-shot "check" invocation.
func (a *App) Check(ctx context.Context) ([]string, []domain.Diagnostic, error) {
	paths, err := a.sourceFiles()
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to enumerate source files")
	}
	return a.Recheck(ctx, paths)
}

// Recheck runs the engine's recheck algorithm over paths and persists the
// resulting error table. paths may be files that changed, were created, or
// were removed; the driver distinguishes those cases from file contents.
func (a *App) Recheck(ctx context.Context, paths []string) (modules []string, diagnostics []domain.Diagnostic, err error) {
	ctx, span := a.tracer.Start(ctx, "recheck")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	ctx, vertex := a.telemetry.Record(ctx, "recheck")
	defer func() { vertex.Complete(err) }()

	modules, diagnostics, err = a.driver.Recheck(ctx, paths)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "recheck failed"), "paths", len(paths))
		return nil, nil, err
	}
	vertex.Log(domain.LogLevelInfo, "rechecked "+strconv.Itoa(len(modules))+" modules")

	if a.store != nil {
		if saveErr := saveErrorTable(a.store, a.config.ProjectRoot, a.driver.Errors); saveErr != nil {
			a.logger.Warn("failed to persist diagnostic table", "error", saveErr)
		}
	}

	return modules, diagnostics, nil
}

// Watch starts w on root and feeds every .py file event through a debounced
// recheck loop until w's event stream ends (for the fsnotify watcher, when
// ctx is canceled). Each debounce window's recheck runs on its own
// goroutine, concurrently with the next window's Add calls, but all of them
// take one lock, so at most one recheck is in flight at a time.
func (a *App) Watch(ctx context.Context, w ports.Watcher, root string, debounce time.Duration, onResult func([]string, []domain.Diagnostic, error)) error {
	if err := w.Start(ctx, root); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}
	defer func() { _ = w.Stop() }()

	var recheckMu sync.Mutex
	deb := watcher.NewDebouncer(debounce, func(paths []string) {
		recheckMu.Lock()
		defer recheckMu.Unlock()
		modules, diagnostics, err := a.Recheck(ctx, paths)
		if onResult != nil {
			onResult(modules, diagnostics, err)
		}
	})
	defer deb.Flush()

	for ev := range w.Events() {
		if filepath.Ext(ev.Path) != ".py" {
			continue
		}
		deb.Add(ev.Path)
	}
	return nil
}

// Stats reports introspection data about the engine's process-wide state:
// how many dependency keys the registry has interned, and the current heap
// size as reported by the shared-memory collector.
type Stats struct {
	RegistrySize int
	HeapBytes    uint64
}

func (a *App) Stats() Stats {
	return Stats{
		RegistrySize: a.driver.Registry.Size(),
		HeapBytes:    a.driver.Memory.HeapSize(),
	}
}

func (a *App) sourceFiles() ([]string, error) {
	roots := a.config.SourceRoots
	if len(roots) == 0 {
		roots = []string{a.config.ProjectRoot}
	}

	var paths []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == ".py" {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to walk source root"), "root", root)
		}
	}
	return paths, nil
}
