// Package cas implements ports.Store over flat files on disk, one per
// layer, the non-tabular persisted state spec §4.6 describes.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
)

// Store implements ports.Store by writing each layer's payload to its own
// file under root, named after the layer. Concurrent Save/Load calls for
// different layers proceed independently; calls for the same layer are
// serialized by a per-layer lock, mirroring the teacher's single
// read/modify/write critical section generalized from one file to many.
type Store struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a Store. No file I/O happens until Save or Load is
// called for a specific layer.
func NewStore() *Store {
	return &Store{locks: make(map[string]*sync.Mutex)}
}

// Save writes data to root/layerName.state, creating root if necessary.
func (s *Store) Save(root, layerName string, data []byte) error {
	lock := s.lockFor(root, layerName)
	lock.Lock()
	defer lock.Unlock()

	if err := os.MkdirAll(root, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "root", root)
	}

	path := filepath.Join(root, layerName+".state")
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // path is built from a trusted root and layer name
		return zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "path", path)
	}
	return nil
}

// Load reads root/layerName.state. ok is false (with a nil error) if the
// file does not exist — persistence is a pure optimization, and a miss is
// never a failure the caller needs to distinguish from "never persisted."
func (s *Store) Load(root, layerName string) ([]byte, bool, error) {
	lock := s.lockFor(root, layerName)
	lock.Lock()
	defer lock.Unlock()

	path := filepath.Join(root, layerName+".state")
	data, err := os.ReadFile(path) //nolint:gosec // path is built from a trusted root and layer name
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "path", path)
	}
	return data, true, nil
}

func (s *Store) lockFor(root, layerName string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := filepath.Join(root, layerName)
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
