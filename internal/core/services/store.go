package services

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
	"github.com/custodia-labs/bucketeer/internal/core/ports/driven"
	"github.com/custodia-labs/bucketeer/internal/logger"
)

// Store is a typed accessor over a lazily opened settings backend.
//
// The backend is opened on the first operation and reused for the life
// of the Store. Concurrent first calls share a single Load. A failed
// Load leaves the Store unopened, so the next operation tries again.
type Store struct {
	filename string
	loader   driven.StoreLoader

	mu     sync.RWMutex
	handle driven.KeyValueStore
	group  singleflight.Group
}

// NewStore creates a store for filename. If filename is empty,
// domain.DefaultSettingsFile is used.
func NewStore(loader driven.StoreLoader, filename string) *Store {
	if filename == "" {
		filename = domain.DefaultSettingsFile
	}
	return &Store{
		filename: filename,
		loader:   loader,
	}
}

// Filename returns the settings file name the store opens.
func (s *Store) Filename() string {
	return s.filename
}

// Loaded reports whether the backend has been opened.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handle != nil
}

// Save flushes the backend's current state to disk.
func (s *Store) Save(ctx context.Context) error {
	h, err := s.prepare(ctx)
	if err != nil {
		return err
	}
	logger.Debug("saving settings to %s", s.filename)
	return h.Save(ctx)
}

// GetItem reads key from the store. The boolean is false when the key
// has never been set, or when the stored value has a different type.
func GetItem[T domain.Value](ctx context.Context, s *Store, key domain.Key[T]) (T, bool, error) {
	var zero T

	h, err := s.prepare(ctx)
	if err != nil {
		return zero, false, err
	}

	raw, ok, err := h.Get(ctx, key.Name())
	if err != nil {
		return zero, false, err
	}
	if !ok {
		return zero, false, nil
	}

	v, ok := raw.(T)
	if !ok {
		logger.Warn("stored value for %s has type %T, ignoring", key.Name(), raw)
		return zero, false, nil
	}
	return v, true, nil
}

// SetItem writes value for key into the backend's in-memory state.
// Call Save to persist it.
func SetItem[T domain.Value](ctx context.Context, s *Store, key domain.Key[T], value T) error {
	h, err := s.prepare(ctx)
	if err != nil {
		return err
	}
	return h.Set(ctx, key.Name(), value)
}

// prepare returns the backend handle, opening it if needed.
func (s *Store) prepare(ctx context.Context) (driven.KeyValueStore, error) {
	if h := s.current(); h != nil {
		return h, nil
	}

	v, err, _ := s.group.Do(s.filename, func() (any, error) {
		if h := s.current(); h != nil {
			return h, nil
		}
		if s.loader == nil {
			return nil, domain.ErrStoreUnavailable
		}

		logger.Debug("opening settings store %s", s.filename)
		// The load is shared by every waiter, so one caller's cancellation
		// must not fail the others.
		h, err := s.loader.Load(context.WithoutCancel(ctx), s.filename)
		if err != nil {
			return nil, err
		}
		if h == nil {
			return nil, domain.ErrStoreUnavailable
		}

		s.mu.Lock()
		s.handle = h
		s.mu.Unlock()
		return h, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(driven.KeyValueStore), nil
}

func (s *Store) current() driven.KeyValueStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handle
}
