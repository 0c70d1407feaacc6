package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
	"github.com/custodia-labs/bucketeer/internal/core/ports/driving"
)

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	settings domain.Settings
	saveErr  error
}

func (m *MockSettingsService) Get(_ context.Context) (*domain.Settings, error) {
	s := m.settings
	return &s, nil
}

func (m *MockSettingsService) SetEditMode(_ context.Context, enabled bool) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings.EditMode = enabled
	return nil
}

func (m *MockSettingsService) ToggleEditMode(_ context.Context) (bool, error) {
	if m.saveErr != nil {
		return false, m.saveErr
	}
	m.settings.EditMode = !m.settings.EditMode
	return m.settings.EditMode, nil
}

func (m *MockSettingsService) SetSelectedProfile(_ context.Context, profile string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings.SelectedProfile = profile
	return nil
}

func (m *MockSettingsService) Save(_ context.Context) error {
	return m.saveErr
}

// MockAWSService implements driving.AWSService for testing.
type MockAWSService struct {
	profiles []string
	buckets  map[string][]domain.Bucket
	err      error
}

func (m *MockAWSService) Profiles(_ context.Context) ([]string, error) {
	return m.profiles, m.err
}

func (m *MockAWSService) ListBuckets(_ context.Context, profile string) ([]domain.Bucket, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.buckets[profile], nil
}

var (
	_ driving.SettingsService = (*MockSettingsService)(nil)
	_ driving.AWSService      = (*MockAWSService)(nil)
)

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{name: "nil ports", ports: nil, want: ErrMissingSettingsService},
		{name: "missing settings", ports: &Ports{AWS: &MockAWSService{}}, want: ErrMissingSettingsService},
		{name: "missing aws", ports: &Ports{Settings: &MockSettingsService{}}, want: ErrMissingAWSService},
		{
			name:  "complete",
			ports: &Ports{Settings: &MockSettingsService{}, AWS: &MockAWSService{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
