// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - StoreLoader: Opens the settings backend for a file name
//   - KeyValueStore: An opened settings backend
//   - ProfileSource: AWS shared config profiles
//   - BucketLister: S3 bucket listing per profile
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
