package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ngthanh/engmaster/internal/gateway"
	"github.com/ngthanh/engmaster/internal/identity"
	"github.com/ngthanh/engmaster/internal/progress"
	"github.com/ngthanh/engmaster/internal/router"
	"github.com/ngthanh/engmaster/internal/screen"
	"github.com/ngthanh/engmaster/internal/screens/login"
	"github.com/ngthanh/engmaster/internal/store"
	"github.com/ngthanh/engmaster/internal/ui/layout"
)

// Options carries the wired services into the TUI.
type Options struct {
	Gateway  *gateway.Gateway
	Events   store.EventRepo
	Profiles store.ProfileRepo
	Syncer   *progress.Syncer

	// Topic overrides the worksheet topic. Empty means the saved or
	// default topic.
	Topic string

	// Role skips the login screen and signs in directly.
	Role identity.Role
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   login.Deps
	user   identity.User
	width  int
	height int
}

// newAppModel builds the model, restoring a saved identity when one
// exists so the learner lands straight on their role screen.
func newAppModel(opts Options) AppModel {
	deps := login.Deps{
		Gateway:  opts.Gateway,
		Events:   opts.Events,
		Profiles: opts.Profiles,
		Syncer:   opts.Syncer,
		Topic:    opts.Topic,
	}

	m := AppModel{deps: deps}

	if opts.Role != "" {
		m.user = identity.MockLogin(opts.Role)
		m.router = router.New(login.ScreenFor(m.user, deps))
		return m
	}

	if opts.Profiles != nil {
		if p, err := opts.Profiles.Latest(context.Background()); err == nil && p != nil && p.Data.UserID != "" {
			m.user = identity.FromProfile(p.Data)
			if deps.Topic == "" && p.Data.LastTopic != "" {
				m.deps.Topic = p.Data.LastTopic
			}
			m.router = router.New(login.ScreenFor(m.user, m.deps))
			return m
		}
	}

	m.router = router.New(login.New(deps))
	return m
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case login.LoggedInMsg:
		m.user = msg.User
		return m, m.router.Replace(login.ScreenFor(m.user, m.deps))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+l":
			if m.user.ID != "" {
				// Sequence the pointer-receiver call before the
				// return reads m, so the cleared user is what gets
				// returned.
				cmd := m.logout()
				return m, cmd
			}
			return m, nil
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// logout clears the saved identity and returns to the login screen.
func (m *AppModel) logout() tea.Cmd {
	if m.deps.Profiles != nil {
		_ = m.deps.Profiles.Save(context.Background(), &store.Profile{})
	}
	m.user = identity.User{}
	return m.router.Replace(login.New(m.deps))
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.user.Name, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}
	if m.router.Depth() > 1 {
		footerHints = append([]layout.KeyHint{{Key: "Esc", Description: "Back"}}, footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
