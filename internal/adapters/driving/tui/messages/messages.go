// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/bucketeer/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewProfiles lists AWS profiles.
	ViewProfiles ViewType = iota
	// ViewBuckets lists buckets for the selected profile.
	ViewBuckets
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SettingsLoaded carries stored settings back to the model.
type SettingsLoaded struct {
	Settings *domain.Settings
	Err      error
}

// ProfilesLoaded carries the configured AWS profiles.
type ProfilesLoaded struct {
	Profiles []string
	Err      error
}

// ProfileChosen is sent when the user picks a profile.
type ProfileChosen struct {
	Profile string
}

// ProfileSaved reports the result of persisting a chosen profile.
type ProfileSaved struct {
	Profile string
	Err     error
}

// EditModeToggled reports the result of toggling edit mode.
type EditModeToggled struct {
	Enabled bool
	Err     error
}

// BucketsLoaded carries buckets for a profile.
type BucketsLoaded struct {
	Profile string
	Buckets []domain.Bucket
	Err     error
}
