// Package buckets provides the S3 bucket list view for the TUI.
package buckets

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bucketeer/internal/core/domain"
	"github.com/custodia-labs/bucketeer/internal/core/ports/driving"
)

// View lists the buckets for one profile.
type View struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	aws     driving.AWSService
	spinner spinner.Model

	profile string
	buckets []domain.Bucket
	err     error
	loading bool
	cursor  int
	height  int
}

// NewView creates a new buckets view.
func NewView(s *styles.Styles, keys *keymap.KeyMap, aws driving.AWSService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if keys == nil {
		keys = keymap.DefaultKeyMap()
	}
	return &View{
		styles:  s,
		keys:    keys,
		aws:     aws,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.Cursor)),
		height:  20,
	}
}

// Load starts fetching buckets for profile.
func (v *View) Load(ctx context.Context, profile string) tea.Cmd {
	v.profile = profile
	v.buckets = nil
	v.err = nil
	v.cursor = 0
	v.loading = true

	aws := v.aws
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		buckets, err := aws.ListBuckets(ctx, profile)
		return messages.BucketsLoaded{Profile: profile, Buckets: buckets, Err: err}
	})
}

// Profile returns the profile whose buckets are shown.
func (v *View) Profile() string {
	return v.profile
}

// Loading reports whether a fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Buckets returns the loaded buckets.
func (v *View) Buckets() []domain.Bucket {
	return v.buckets
}

// SetHeight sets the number of rows available for the list.
func (v *View) SetHeight(h int) {
	if h > 0 {
		v.height = h
	}
}

// Update handles messages for the buckets view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.BucketsLoaded:
		// Drop results from a profile the user already navigated away from.
		if msg.Profile != v.profile {
			return v, nil
		}
		v.loading = false
		v.buckets = msg.Buckets
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			if v.cursor > 0 {
				v.cursor--
			}
		case key.Matches(msg, v.keys.Down):
			if v.cursor < len(v.buckets)-1 {
				v.cursor++
			}
		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewProfiles}
			}
		}
	}
	return v, nil
}

// View renders the bucket list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Buckets (%s)", v.profile)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.spinner.View() + " Listing buckets...\n")
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n")
		return b.String()
	case len(v.buckets) == 0:
		b.WriteString(v.styles.Muted.Render("No buckets found."))
		b.WriteString("\n")
		return b.String()
	}

	start := 0
	if v.cursor >= v.height {
		start = v.cursor - v.height + 1
	}
	end := min(start+v.height, len(v.buckets))

	for i := start; i < end; i++ {
		bucket := v.buckets[i]
		cursor := "  "
		if i == v.cursor {
			cursor = v.styles.Cursor.Render("> ")
		}
		line := cursor + bucket.Name
		if !bucket.CreatedAt.IsZero() {
			line += "  " + v.styles.Muted.Render(bucket.CreatedAt.Format("2006-01-02"))
		}
		b.WriteString(line + "\n")
	}

	if len(v.buckets) > v.height {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d/%d", v.cursor+1, len(v.buckets))))
		b.WriteString("\n")
	}
	return b.String()
}
