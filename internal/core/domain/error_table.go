package domain

import "sync"

// Diagnostic is a UserDiagnostic payload — an ordinary type error. Unlike
// the engine's own error kinds (§7), a Diagnostic is never returned as a Go
// error: it flows through the ErrorTable as data.
type Diagnostic struct {
	Module   string
	Line     int
	Column   int
	Message  string
	Severity string // "error" | "warning"
}

// ErrorTable is module-name -> diagnostics produced by the last
// post-processing run. It lives outside the layer stack and is mutated only
// by the recheck driver's reconciliation step.
type ErrorTable struct {
	mu      sync.RWMutex
	byModule map[string][]Diagnostic
}

// NewErrorTable creates an empty ErrorTable.
func NewErrorTable() *ErrorTable {
	return &ErrorTable{byModule: make(map[string][]Diagnostic)}
}

// Get returns a snapshot of module's diagnostics.
func (e *ErrorTable) Get(module string) []Diagnostic {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Diagnostic, len(e.byModule[module]))
	copy(out, e.byModule[module])
	return out
}

// All returns a snapshot of every module's diagnostics.
func (e *ErrorTable) All() map[string][]Diagnostic {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string][]Diagnostic, len(e.byModule))
	for m, ds := range e.byModule {
		cp := make([]Diagnostic, len(ds))
		copy(cp, ds)
		out[m] = cp
	}
	return out
}

// Restore replaces the table's entire contents with snapshot. Used to
// repopulate the table from persisted state at startup, before any
// recheck has run.
func (e *ErrorTable) Restore(snapshot map[string][]Diagnostic) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.byModule = make(map[string][]Diagnostic, len(snapshot))
	for m, ds := range snapshot {
		cp := make([]Diagnostic, len(ds))
		copy(cp, ds)
		e.byModule[m] = cp
	}
}

// Reconcile drops every existing entry for each module in modules, then
// appends each diagnostic in diagnostics under its own Module key. Modules
// in the input with no new diagnostics end up with no entry at all — this
// is how a deleted module's stale errors disappear (spec §8 scenario 5).
func (e *ErrorTable) Reconcile(modules []string, diagnostics []Diagnostic) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, m := range modules {
		delete(e.byModule, m)
	}
	for _, d := range diagnostics {
		e.byModule[d.Module] = append(e.byModule[d.Module], d)
	}
}
