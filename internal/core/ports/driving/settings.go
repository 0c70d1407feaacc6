package driving

import (
	"context"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
)

// SettingsService manages persisted user settings.
type SettingsService interface {
	// Get retrieves current settings with defaults applied.
	Get(ctx context.Context) (*domain.Settings, error)

	// SetEditMode updates edit mode and persists it.
	SetEditMode(ctx context.Context, enabled bool) error

	// ToggleEditMode flips edit mode, persists it and returns the new value.
	ToggleEditMode(ctx context.Context) (bool, error)

	// SetSelectedProfile updates the selected AWS profile and persists it.
	SetSelectedProfile(ctx context.Context, profile string) error

	// Save flushes pending changes to storage.
	Save(ctx context.Context) error
}
