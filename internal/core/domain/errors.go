package domain

import "go.trai.ch/zerr"

var (
	// ErrTransientProducerFailure is returned when a produce_value invocation raises
	// for a single trigger. The enclosing transaction is aborted and the Table is left
	// in its pre-update state.
	ErrTransientProducerFailure = zerr.New("produce_value failed for trigger")

	// ErrInconsistentUpstream is returned when an upstream read view returns a value
	// that violates a layer's stated invariant. This is a programming error; callers
	// should fail fast rather than attempt recovery.
	ErrInconsistentUpstream = zerr.New("upstream read view violated layer invariant")

	// ErrIOFailure wraps a store/load failure. It is surfaced unchanged to the
	// orchestrator and never corrupts in-memory state.
	ErrIOFailure = zerr.New("persistence I/O failure")

	// ErrUnknownHandle is returned when GetKey is called with a handle that was
	// never issued by Register. The registry promises GetKey is total over every
	// handle it has ever returned, so this indicates caller error.
	ErrUnknownHandle = zerr.New("unknown registered dependency handle")

	// ErrModuleNotFound is returned when a module referenced by a trigger or a
	// post-processing request no longer exists in the parser layer's view.
	ErrModuleNotFound = zerr.New("module not found")
)
