package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ngthanh/engmaster/internal/identity"
	"github.com/ngthanh/engmaster/internal/screens/login"
	"github.com/ngthanh/engmaster/internal/store"
)

type memProfiles struct {
	saved []store.Profile
}

func (m *memProfiles) Save(_ context.Context, p *store.Profile) error {
	m.saved = append(m.saved, *p)
	return nil
}

func (m *memProfiles) Latest(_ context.Context) (*store.Profile, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	p := m.saved[len(m.saved)-1]
	return &p, nil
}

func TestLogout_ClearsUserOnReturnedModel(t *testing.T) {
	profiles := &memProfiles{}
	m := newAppModel(Options{
		Profiles: profiles,
		Role:     identity.RoleStudent,
	})
	if m.user.ID == "" {
		t.Fatal("expected a signed-in user after role login")
	}

	updated, _ := m.Update(tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})

	am := updated.(AppModel)
	if am.user.ID != "" {
		t.Errorf("user.ID = %q after logout, want empty", am.user.ID)
	}
	if _, ok := am.router.Active().(*login.LoginScreen); !ok {
		t.Errorf("active screen = %T, want *login.LoginScreen", am.router.Active())
	}

	// Logout persists a cleared profile revision.
	latest, err := profiles.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest profile: %v", err)
	}
	if latest == nil || latest.Data.UserID != "" {
		t.Errorf("latest profile = %+v, want a cleared revision", latest)
	}
}
