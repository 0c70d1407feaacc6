package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/bucketeer/internal/core/ports/driven"
)

//go:embed schema.sql
var schema string

// Ensure the adapters implement the interfaces.
var (
	_ driven.KeyValueStore = (*Store)(nil)
	_ driven.StoreLoader   = (*Loader)(nil)
)

// Store is a SQLite-backed implementation of driven.KeyValueStore.
// Values are JSON encoded. Writes are buffered until Save.
type Store struct {
	db   *sql.DB
	path string

	mu      sync.Mutex
	pending map[string]any
}

// Open opens or creates the settings database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{
		db:      db,
		path:    path,
		pending: make(map[string]any),
	}, nil
}

// Close closes the database connection. Unsaved values are discarded.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get retrieves a value by key, preferring unsaved values.
func (s *Store) Get(ctx context.Context, key string) (any, bool, error) {
	s.mu.Lock()
	val, ok := s.pending[key]
	s.mu.Unlock()
	if ok {
		return val, true, nil
	}

	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), &val); err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return val, true, nil
}

// Set buffers a value until the next Save.
func (s *Store) Set(_ context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key] = value
	return nil
}

// Save writes all buffered values in a single transaction.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for key, value := range s.pending {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", key, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO settings (key, value, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at
		`, key, string(encoded))
		if err != nil {
			return fmt.Errorf("writing %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing settings: %w", err)
	}

	s.pending = make(map[string]any)
	return nil
}

// Loader opens SQLite settings databases from a settings directory.
// It keeps every store it opens so they can be closed together.
type Loader struct {
	dir string

	mu     sync.Mutex
	opened []*Store
}

// NewLoader creates a loader rooted at dir.
// If dir is empty, defaults to ~/.bucketeer.
func NewLoader(dir string) (*Loader, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".bucketeer")
	}
	return &Loader{dir: dir}, nil
}

// Load opens filename as a SQLite database, resolved against the
// settings directory unless it is absolute.
func (l *Loader) Load(ctx context.Context, filename string) (driven.KeyValueStore, error) {
	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.dir, filename)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	store, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.opened = append(l.opened, store)
	l.mu.Unlock()
	return store, nil
}

// Close closes every store opened by this loader.
func (l *Loader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var errs []error
	for _, s := range l.opened {
		errs = append(errs, s.Close())
	}
	l.opened = nil
	return errors.Join(errs...)
}
