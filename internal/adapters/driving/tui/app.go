package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui/views/buckets"
	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui/views/profiles"
	"github.com/custodia-labs/bucketeer/internal/core/domain"
	"github.com/custodia-labs/bucketeer/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap
	help   help.Model

	profilesView *profiles.View
	bucketsView  *buckets.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	editMode bool
	status   string
	err      error

	width  int
	height int
	ready  bool
}

var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	keys := keymap.DefaultKeyMap()

	h := help.New()
	h.Styles.ShortKey = s.Help
	h.Styles.ShortDesc = s.Muted

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keys:         keys,
		help:         h,
		profilesView: profiles.NewView(s, keys),
		bucketsView:  buckets.NewView(s, keys, ports.AWS),
		currentView:  messages.ViewProfiles,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("bucketeer"),
		a.loadSettings(),
		a.loadProfiles(),
	)
}

func (a *App) loadSettings() tea.Cmd {
	ctx, svc := a.ctx, a.ports.Settings
	return func() tea.Msg {
		s, err := svc.Get(ctx)
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

func (a *App) loadProfiles() tea.Cmd {
	ctx, svc := a.ctx, a.ports.AWS
	return func() tea.Msg {
		p, err := svc.Profiles(ctx)
		return messages.ProfilesLoaded{Profiles: p, Err: err}
	}
}

func (a *App) saveProfile(profile string) tea.Cmd {
	ctx, svc := a.ctx, a.ports.Settings
	return func() tea.Msg {
		return messages.ProfileSaved{Profile: profile, Err: svc.SetSelectedProfile(ctx, profile)}
	}
}

func (a *App) toggleEditMode() tea.Cmd {
	ctx, svc := a.ctx, a.ports.Settings
	return func() tea.Msg {
		enabled, err := svc.ToggleEditMode(ctx)
		return messages.EditModeToggled{Enabled: enabled, Err: err}
	}
}

func (a *App) selectedProfile() string {
	if p := a.profilesView.Selected(); p != "" {
		return p
	}
	return domain.DefaultProfile
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		case key.Matches(msg, a.keys.EditMode):
			return a, a.toggleEditMode()
		case a.currentView == messages.ViewBuckets && key.Matches(msg, a.keys.Refresh):
			return a, a.bucketsView.Load(a.ctx, a.bucketsView.Profile())
		}

		switch a.currentView {
		case messages.ViewProfiles:
			a.profilesView, cmd = a.profilesView.Update(msg)
		case messages.ViewBuckets:
			a.bucketsView, cmd = a.bucketsView.Update(msg)
		}
		return a, cmd

	case messages.SettingsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.editMode = msg.Settings.EditMode
		a.profilesView.SetSelected(msg.Settings.SelectedProfile)
		return a, nil

	case messages.ProfilesLoaded:
		a.profilesView.SetProfiles(msg.Profiles, msg.Err)
		return a, nil

	case messages.ProfileChosen:
		return a, a.saveProfile(msg.Profile)

	case messages.ProfileSaved:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.profilesView.SetSelected(msg.Profile)
		a.status = "Selected profile " + msg.Profile
		logger.Debug("selected profile %s", msg.Profile)
		return a, nil

	case messages.EditModeToggled:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.editMode = msg.Enabled
		a.status = "Edit mode " + onOff(msg.Enabled)
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		a.status = ""
		if msg.View == messages.ViewBuckets {
			return a, a.bucketsView.Load(a.ctx, a.selectedProfile())
		}
		return a, nil

	case messages.BucketsLoaded, spinner.TickMsg:
		a.bucketsView, cmd = a.bucketsView.Update(msg)
		return a, cmd
	}

	return a, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder

	header := a.styles.Title.Render("bucketeer")
	if a.editMode {
		header += " " + a.styles.Badge.Render("EDIT")
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	switch a.currentView {
	case messages.ViewBuckets:
		b.WriteString(a.bucketsView.View())
	default:
		b.WriteString(a.profilesView.View())
	}

	b.WriteString("\n")
	if a.err != nil {
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	} else if a.status != "" {
		b.WriteString(a.styles.Success.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(a.help.View(a.keys))

	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// EditMode reports whether edit mode is on.
func (a *App) EditMode() bool {
	return a.editMode
}

// SelectedProfile returns the profile currently marked as selected.
func (a *App) SelectedProfile() string {
	return a.selectedProfile()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	// Header, title, footer and help take roughly eight rows.
	a.bucketsView.SetHeight(height - 8)
}
