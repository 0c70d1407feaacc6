// Package sqlite provides a SQLite-based settings backend.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// A single settings table (schema.sql) maps each key to a JSON-encoded value.
//
// # Thread Safety
//
// All operations are thread-safe. Buffered writes are guarded by a mutex and the
// database runs in WAL mode.
package sqlite
