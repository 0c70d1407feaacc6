// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Store is the typed settings accessor; SettingsService and AWSService
// build on it.
package services
