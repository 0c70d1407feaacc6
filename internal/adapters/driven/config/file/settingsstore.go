package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/bucketeer/internal/core/ports/driven"
	"github.com/custodia-labs/bucketeer/internal/logger"
)

// Ensure the adapters implement the interfaces.
var (
	_ driven.KeyValueStore = (*Store)(nil)
	_ driven.StoreLoader   = (*Loader)(nil)
)

// Store is a file-based implementation of driven.KeyValueStore using TOML.
// Set only changes the in-memory copy; Save writes the file.
type Store struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// Open reads the settings file at path. A missing file yields an
// empty store; the file is created on the first Save.
func Open(path string) (*Store, error) {
	s := &Store{
		filePath: path,
		data:     make(map[string]any),
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get retrieves a value by key.
func (s *Store) Get(_ context.Context, key string) (any, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok, nil
}

// Set stores a value in memory.
func (s *Store) Set(_ context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Save persists the current settings to disk.
// The lock is held through the rename so saves land in order.
func (s *Store) Save(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	return writeFileAtomic(s.filePath, data)
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.filePath
}

// load reads settings from the TOML file.
func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No settings file yet - that's fine, start empty
			return nil
		}
		return fmt.Errorf("reading settings: %w", err)
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("decoding %s: %w", s.filePath, err)
	}
	if loaded != nil {
		s.data = loaded
	}

	logger.Debug("loaded %d settings from %s", len(s.data), s.filePath)
	return nil
}

// writeFileAtomic writes data next to path and renames it into place
// with restricted permissions.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing settings file: %w", err)
	}
	return nil
}

// Loader opens TOML settings files from a settings directory.
type Loader struct {
	dir string
}

// NewLoader creates a loader rooted at dir.
// If dir is empty, defaults to ~/.bucketeer.
func NewLoader(dir string) (*Loader, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".bucketeer")
	}
	return &Loader{dir: dir}, nil
}

// Dir returns the settings directory.
func (l *Loader) Dir() string {
	return l.dir
}

// Load opens filename, resolved against the settings directory unless
// it is absolute. The parent directory is created if needed.
func (l *Loader) Load(_ context.Context, filename string) (driven.KeyValueStore, error) {
	path := l.resolve(filename)

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return Open(path)
}

func (l *Loader) resolve(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(l.dir, filename)
}
