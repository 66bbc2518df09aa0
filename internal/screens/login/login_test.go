package login

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ngthanh/engmaster/internal/identity"
	"github.com/ngthanh/engmaster/internal/screens/dashboard"
	worksheetscreen "github.com/ngthanh/engmaster/internal/screens/worksheet"
	"github.com/ngthanh/engmaster/internal/store"
)

// mockProfileRepo implements store.ProfileRepo for testing.
type mockProfileRepo struct {
	saved []*store.Profile
}

func (m *mockProfileRepo) Save(_ context.Context, p *store.Profile) error {
	m.saved = append(m.saved, p)
	return nil
}

func (m *mockProfileRepo) Latest(_ context.Context) (*store.Profile, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestLogin_View(t *testing.T) {
	l := New(Deps{})
	view := l.View(80, 24)

	for _, want := range []string{"Chào mừng!", "Học viên", "Giáo viên"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLogin_StudentFlow(t *testing.T) {
	profiles := &mockProfileRepo{}
	l := New(Deps{Profiles: profiles})

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on sign-in")
	}

	logged, ok := cmd().(LoggedInMsg)
	if !ok {
		t.Fatal("expected a LoggedInMsg")
	}
	user := logged.User

	if user.Role != identity.RoleStudent {
		t.Errorf("role = %q, want student", user.Role)
	}
	if user.Name != "Nguyễn Văn A (Student)" {
		t.Errorf("name = %q", user.Name)
	}

	scr := ScreenFor(user, Deps{})
	if _, ok := scr.(*worksheetscreen.WorksheetScreen); !ok {
		t.Errorf("role screen is %T, want worksheet", scr)
	}

	if len(profiles.saved) != 1 {
		t.Fatalf("profiles saved = %d, want 1", len(profiles.saved))
	}
	if profiles.saved[0].Data.Role != string(identity.RoleStudent) {
		t.Errorf("saved role = %q", profiles.saved[0].Data.Role)
	}
}

func TestScreenFor_TeacherRole(t *testing.T) {
	user := identity.MockLogin(identity.RoleTeacher)
	scr := ScreenFor(user, Deps{})
	if _, ok := scr.(*dashboard.DashboardScreen); !ok {
		t.Errorf("screen is %T, want dashboard", scr)
	}
}
