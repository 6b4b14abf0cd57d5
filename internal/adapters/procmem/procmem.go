// Package procmem implements ports.SharedMemory over the Go runtime's own
// memory stats, standing in for the auxiliary native-side caches the real
// type checker keeps outside the layer stack.
package procmem

import (
	"runtime"
	"runtime/debug"
)

// SharedMemory reports process heap size and triggers a GC cycle on
// request. It has no caches of its own to invalidate — InvalidateCaches
// is a no-op here, present only to satisfy the port, since a real
// implementation would drop native-side scratch tables the layer stack
// knows nothing about.
type SharedMemory struct{}

// New creates a SharedMemory backed by the Go runtime.
func New() *SharedMemory { return &SharedMemory{} }

// InvalidateCaches is a no-op: this stub keeps no auxiliary cache outside
// the layer stack's own Tables.
func (m *SharedMemory) InvalidateCaches() {}

// Collect runs a GC cycle. aggressive additionally returns freed memory to
// the OS.
func (m *SharedMemory) Collect(aggressive bool) {
	if aggressive {
		debug.FreeOSMemory()
		return
	}
	runtime.GC()
}

// HeapSize reports the current heap size in bytes.
func (m *SharedMemory) HeapSize() uint64 {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return stats.HeapAlloc
}
