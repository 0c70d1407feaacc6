package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/custodia-labs/bucketeer/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.KeyValueStore = (*Store)(nil)

// Disk simulates a directory of settings files in memory.
// Stores opened through the same Disk see each other's saved state.
type Disk struct {
	mu    sync.Mutex
	files map[string]map[string]any
}

// NewDisk creates an empty in-memory disk.
func NewDisk() *Disk {
	return &Disk{
		files: make(map[string]map[string]any),
	}
}

// Loader returns a StoreLoader that opens stores on this disk.
func (d *Disk) Loader() driven.StoreLoader {
	return driven.StoreLoaderFunc(func(_ context.Context, filename string) (driven.KeyValueStore, error) {
		return d.Open(filename), nil
	})
}

// Open returns a store holding a copy of the saved state for filename.
func (d *Disk) Open(filename string) *Store {
	d.mu.Lock()
	defer d.mu.Unlock()

	values := make(map[string]any)
	maps.Copy(values, d.files[filename])

	return &Store{
		disk:     d,
		filename: filename,
		values:   values,
	}
}

// Exists reports whether filename has been saved.
func (d *Disk) Exists(filename string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.files[filename]
	return ok
}

func (d *Disk) write(filename string, values map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[filename] = values
}

// Store is an in-memory implementation of driven.KeyValueStore for testing.
type Store struct {
	mu       sync.RWMutex
	disk     *Disk
	filename string
	values   map[string]any
}

// NewStore creates a standalone in-memory store. Save is a no-op.
func NewStore() *Store {
	return &Store{
		values: make(map[string]any),
	}
}

// Get retrieves a value by key.
func (s *Store) Get(_ context.Context, key string) (any, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok, nil
}

// Set stores a value.
func (s *Store) Set(_ context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Save copies the current values to the backing disk, if any.
func (s *Store) Save(_ context.Context) error {
	if s.disk == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.disk.write(s.filename, maps.Clone(s.values))
	return nil
}
