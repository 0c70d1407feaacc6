// Package domain defines the core types for bucketeer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Key: A typed settings key (isEditMode, selectedAwsProfile)
//   - Settings: A snapshot of stored settings with defaults applied
//   - Bucket: An S3 bucket listed for a profile
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
