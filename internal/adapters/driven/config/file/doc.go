// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - Store: TOML-encoded settings file (default ~/.bucketeer/.settings.dat)
//   - Loader: Opens settings files relative to the settings directory
package file
