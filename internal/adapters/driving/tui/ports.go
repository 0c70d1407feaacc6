// Package tui provides an interactive terminal user interface for bucketeer.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/bucketeer/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Settings reads and persists user settings.
	Settings driving.SettingsService

	// AWS lists profiles and buckets.
	AWS driving.AWSService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Settings == nil {
		return ErrMissingSettingsService
	}
	if p.AWS == nil {
		return ErrMissingAWSService
	}
	return nil
}
