package login

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ngthanh/engmaster/internal/gateway"
	"github.com/ngthanh/engmaster/internal/identity"
	"github.com/ngthanh/engmaster/internal/progress"
	"github.com/ngthanh/engmaster/internal/screen"
	"github.com/ngthanh/engmaster/internal/screens/dashboard"
	worksheetscreen "github.com/ngthanh/engmaster/internal/screens/worksheet"
	"github.com/ngthanh/engmaster/internal/store"
	"github.com/ngthanh/engmaster/internal/ui/components"
	"github.com/ngthanh/engmaster/internal/ui/layout"
	"github.com/ngthanh/engmaster/internal/ui/theme"
	"github.com/ngthanh/engmaster/internal/worksheet"
)

// LoggedInMsg notifies the app model of the signed-in identity.
type LoggedInMsg struct {
	User identity.User
}

// Deps carries everything the role screens need after sign-in.
type Deps struct {
	Gateway  *gateway.Gateway
	Events   store.EventRepo
	Profiles store.ProfileRepo
	Syncer   *progress.Syncer

	// Topic is the worksheet topic for the student flow. Defaults to
	// the starter topic when empty.
	Topic string
}

// LoginScreen is the simulated sign-in with role selection.
type LoginScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen.
func New(deps Deps) *LoginScreen {
	if deps.Topic == "" {
		deps.Topic = worksheet.DefaultTopic
	}

	l := &LoginScreen{deps: deps}
	l.menu = components.NewMenu([]components.MenuItem{
		{
			Label:  "Đăng nhập với vai trò Học viên",
			Action: func() tea.Cmd { return l.login(identity.RoleStudent) },
		},
		{
			Label:  "Đăng nhập với vai trò Giáo viên",
			Action: func() tea.Cmd { return l.login(identity.RoleTeacher) },
		},
	})
	return l
}

func (l *LoginScreen) Init() tea.Cmd {
	return nil
}

func (l *LoginScreen) Title() string {
	return "Login"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Select role"},
		{Key: "Enter", Description: "Sign in"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LoginScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Chào mừng!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Vui lòng đăng nhập để tiếp tục"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l.menu.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Sử dụng tài khoản Google của bạn để đồng bộ quá trình học tập."))

	return b.String()
}

// login creates the mock identity and persists it. The app model
// handles LoggedInMsg by swapping in the role screen.
func (l *LoginScreen) login(role identity.Role) tea.Cmd {
	user := identity.MockLogin(role)

	if l.deps.Profiles != nil {
		data := identity.ToProfile(user, l.deps.Topic)
		_ = l.deps.Profiles.Save(context.Background(), &store.Profile{Data: data})
	}

	return func() tea.Msg { return LoggedInMsg{User: user} }
}

// ScreenFor returns the role screen for an identity, used both after
// login and when restoring a saved profile at startup.
func ScreenFor(user identity.User, deps Deps) screen.Screen {
	if deps.Topic == "" {
		deps.Topic = worksheet.DefaultTopic
	}
	if user.Role == identity.RoleTeacher {
		return dashboard.New(deps.Events, user)
	}
	return worksheetscreen.New(deps.Gateway, deps.Events, deps.Syncer, user, deps.Topic)
}
