// Package profiles provides the AWS profile picker view for the TUI.
package profiles

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui/styles"
)

// View lists AWS profiles and marks the selected one.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	profiles []string
	selected string
	cursor   int
	err      error
	loaded   bool
}

// NewView creates a new profiles view.
func NewView(s *styles.Styles, keys *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if keys == nil {
		keys = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keys: keys}
}

// SetProfiles replaces the profile list.
func (v *View) SetProfiles(profiles []string, err error) {
	v.profiles = profiles
	v.err = err
	v.loaded = true
	v.cursor = 0
	v.moveToSelected()
}

// SetSelected marks profile as the selected one.
func (v *View) SetSelected(profile string) {
	v.selected = profile
	v.moveToSelected()
}

// Selected returns the profile marked as selected.
func (v *View) Selected() string {
	return v.selected
}

// Cursor returns the index under the cursor.
func (v *View) Cursor() int {
	return v.cursor
}

func (v *View) moveToSelected() {
	for i, p := range v.profiles {
		if p == v.selected {
			v.cursor = i
			return
		}
	}
}

// Update handles messages for the profiles view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, v.keys.Down):
		if v.cursor < len(v.profiles)-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, v.keys.Select):
		if len(v.profiles) == 0 {
			return v, nil
		}
		profile := v.profiles[v.cursor]
		return v, func() tea.Msg {
			return messages.ProfileChosen{Profile: profile}
		}
	case key.Matches(keyMsg, v.keys.Buckets):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewBuckets}
		}
	}
	return v, nil
}

// View renders the profile list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("AWS Profiles"))
	b.WriteString("\n\n")

	switch {
	case !v.loaded:
		b.WriteString(v.styles.Muted.Render("Loading profiles..."))
		b.WriteString("\n")
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n")
		return b.String()
	case len(v.profiles) == 0:
		b.WriteString(v.styles.Muted.Render("No profiles found."))
		b.WriteString("\n")
		return b.String()
	}

	for i, p := range v.profiles {
		cursor := "  "
		label := p
		if i == v.cursor {
			cursor = v.styles.Cursor.Render("> ")
		}
		if p == v.selected {
			label = v.styles.Selected.Render(p + " (selected)")
		}
		b.WriteString(cursor + label + "\n")
	}
	return b.String()
}
