package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		want       int
	}{
		{name: "empty uses default", input: "", maxVal: 3, defaultVal: 1, want: 1},
		{name: "valid", input: "2", maxVal: 3, defaultVal: 1, want: 2},
		{name: "upper bound", input: "3", maxVal: 3, defaultVal: 1, want: 3},
		{name: "too large", input: "4", maxVal: 3, defaultVal: 1, want: 1},
		{name: "zero", input: "0", maxVal: 3, defaultVal: 1, want: 1},
		{name: "not a number", input: "abc", maxVal: 3, defaultVal: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}

func TestProfilesList_MarksSelected(t *testing.T) {
	settings := useTestServices(t, &stubAWS{profiles: []string{"default", "dev"}})
	require.NoError(t, settings.SetSelectedProfile(context.Background(), "dev"))

	out, err := executeCommand(t, "profiles")

	require.NoError(t, err)
	assert.Equal(t, "  default\n* dev\n", out)
}

func TestProfilesList_Error(t *testing.T) {
	useTestServices(t, &stubAWS{err: errors.New("failed to read AWS config")})

	_, err := executeCommand(t, "profiles", "list")

	assert.EqualError(t, err, "failed to read AWS config")
}

func TestProfilesUse_ByName(t *testing.T) {
	settings := useTestServices(t, &stubAWS{})

	out, err := executeCommand(t, "profiles", "use", "staging")

	require.NoError(t, err)
	assert.Contains(t, out, "Selected profile: staging")
	got, err := settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "staging", got.SelectedProfile)
}

func TestProfilesUse_Prompt(t *testing.T) {
	settings := useTestServices(t, &stubAWS{profiles: []string{"default", "dev", "prod"}})

	out, err := executeCommandWithInput(t, "3\n", "profiles", "use")

	require.NoError(t, err)
	assert.Contains(t, out, "  2. dev")
	assert.Contains(t, out, "Selected profile: prod")
	got, err := settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "prod", got.SelectedProfile)
}

func TestProfilesUse_PromptNoProfiles(t *testing.T) {
	useTestServices(t, &stubAWS{})

	_, err := executeCommandWithInput(t, "\n", "profiles", "use")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
