package dashboard

import (
	"context"
	"strings"
	"testing"

	"github.com/ngthanh/engmaster/internal/identity"
	"github.com/ngthanh/engmaster/internal/screen"
	"github.com/ngthanh/engmaster/internal/store"
)

// mockEventRepo implements the aggregate queries used by the dashboard.
type mockEventRepo struct {
	store.EventRepo

	totals store.AnswerTotals
	usage  []store.TopicUsage
}

func (m *mockEventRepo) Totals(_ context.Context) (store.AnswerTotals, error) {
	return m.totals, nil
}

func (m *mockEventRepo) UsageByTopic(_ context.Context) ([]store.TopicUsage, error) {
	return m.usage, nil
}

func teacherUser() identity.User {
	return identity.MockLogin(identity.RoleTeacher)
}

func TestDashboard_MockRosterOnly(t *testing.T) {
	d := New(&mockEventRepo{}, teacherUser())

	msg := d.loadStats()()
	loaded, ok := msg.(statsLoadedMsg)
	if !ok {
		t.Fatalf("loadStats produced %T, want statsLoadedMsg", msg)
	}
	if len(loaded.Rows) != len(mockClass) {
		t.Errorf("rows = %d, want %d when learner has no history", len(loaded.Rows), len(mockClass))
	}
}

func TestDashboard_MergesLocalLearner(t *testing.T) {
	events := &mockEventRepo{
		totals: store.AnswerTotals{Answers: 12, Batches: 3, AverageScore: 7.25},
		usage: []store.TopicUsage{
			{Topic: "Greetings", Answers: 4, AverageScore: 8.0},
			{Topic: "Shopping", Answers: 8, AverageScore: 6.9},
		},
	}
	user := teacherUser()
	d := New(events, user)

	msg := d.loadStats()()
	loaded := msg.(statsLoadedMsg)

	if len(loaded.Rows) != len(mockClass)+1 {
		t.Fatalf("rows = %d, want %d", len(loaded.Rows), len(mockClass)+1)
	}
	last := loaded.Rows[len(loaded.Rows)-1]
	if last.Name != user.Name {
		t.Errorf("merged row name = %q, want %q", last.Name, user.Name)
	}
	if last.Topic != "Shopping" {
		t.Errorf("merged row topic = %q, want most-practiced topic", last.Topic)
	}
	if last.Answered != 12 {
		t.Errorf("merged row answered = %d, want 12", last.Answered)
	}
}

func TestDashboard_View(t *testing.T) {
	d := New(&mockEventRepo{}, teacherUser())

	if !strings.Contains(d.View(100, 40), "Loading") {
		t.Error("expected loading view before stats are in")
	}

	var scr screen.Screen = d
	scr, _ = scr.Update(statsLoadedMsg{Rows: mockClass})
	view := scr.View(100, 40)

	for _, name := range []string{"Nguyen Van A", "Hoang Van E", "Needs Attention"} {
		if !strings.Contains(view, name) {
			t.Errorf("view missing %q", name)
		}
	}
}
