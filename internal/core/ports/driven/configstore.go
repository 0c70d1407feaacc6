package driven

import "context"

// KeyValueStore is an opened handle to a persistent settings backend.
// Implementations handle the on-disk format; values are plain Go values
// (bool, string) keyed by setting name.
type KeyValueStore interface {
	// Get retrieves a value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(ctx context.Context, key string) (any, bool, error)

	// Set stores a value in the backend's in-memory state.
	// The value is not persisted until Save is called.
	Set(ctx context.Context, key string, value any) error

	// Save persists the current state to storage.
	Save(ctx context.Context) error
}

// StoreLoader opens or creates the backend for a named settings file.
// A loader may return a nil store and a nil error when no backend is
// available; callers treat that as an unavailable store.
type StoreLoader interface {
	Load(ctx context.Context, filename string) (KeyValueStore, error)
}

// StoreLoaderFunc adapts a function to the StoreLoader interface.
type StoreLoaderFunc func(ctx context.Context, filename string) (KeyValueStore, error)

// Load calls f(ctx, filename).
func (f StoreLoaderFunc) Load(ctx context.Context, filename string) (KeyValueStore, error) {
	return f(ctx, filename)
}
