// Package cas implements the snapshot store of resolved outputs.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Snapshot
}

// NewStore creates a new SnapshotStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Snapshot),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}

	return nil
}

// save writes the cache to disk. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the snapshot for a given task name.
func (s *Store) Get(taskName string) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.cache[taskName]
	if !ok {
		return nil, nil
	}
	return &snapshot, nil
}

// Put stores the snapshot and persists the store.
func (s *Store) Put(snapshot domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[snapshot.TaskName] = snapshot
	return s.save()
}

// Opener implements ports.SnapshotStoreOpener for stores kept in the project's state directory.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open loads the snapshot store of the project rooted at root.
func (o *Opener) Open(root string) (ports.SnapshotStore, error) {
	return NewStore(filepath.Join(root, domain.DefaultSnapshotPath()))
}
