package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
	"github.com/custodia-labs/bucketeer/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages persisted user settings.
// Writes are serialized so a toggle sees the result of the previous one.
type SettingsService struct {
	store *Store
	mu    sync.Mutex
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store *Store) *SettingsService {
	return &SettingsService{store: store}
}

// Get retrieves current settings with defaults applied.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	editMode, ok, err := GetItem(ctx, s.store, domain.IsEditMode)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", domain.IsEditMode, err)
	}
	if ok {
		settings.EditMode = editMode
	}

	profile, ok, err := GetItem(ctx, s.store, domain.SelectedAwsProfile)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", domain.SelectedAwsProfile, err)
	}
	if ok && profile != "" {
		settings.SelectedProfile = profile
	}

	return &settings, nil
}

// SetEditMode updates edit mode and persists it.
func (s *SettingsService) SetEditMode(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setEditMode(ctx, enabled)
}

func (s *SettingsService) setEditMode(ctx context.Context, enabled bool) error {
	if err := SetItem(ctx, s.store, domain.IsEditMode, enabled); err != nil {
		return fmt.Errorf("set %s: %w", domain.IsEditMode, err)
	}
	return s.Save(ctx)
}

// ToggleEditMode flips edit mode, persists it and returns the new value.
func (s *SettingsService) ToggleEditMode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _, err := GetItem(ctx, s.store, domain.IsEditMode)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", domain.IsEditMode, err)
	}

	enabled := !current
	if err := s.setEditMode(ctx, enabled); err != nil {
		return current, err
	}
	return enabled, nil
}

// SetSelectedProfile updates the selected AWS profile and persists it.
func (s *SettingsService) SetSelectedProfile(ctx context.Context, profile string) error {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return fmt.Errorf("%w: profile name is empty", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := SetItem(ctx, s.store, domain.SelectedAwsProfile, profile); err != nil {
		return fmt.Errorf("set %s: %w", domain.SelectedAwsProfile, err)
	}
	return s.Save(ctx)
}

// Save flushes pending changes to storage.
func (s *SettingsService) Save(ctx context.Context) error {
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
