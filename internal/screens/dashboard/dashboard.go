package dashboard

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/ngthanh/engmaster/internal/identity"
	"github.com/ngthanh/engmaster/internal/screen"
	"github.com/ngthanh/engmaster/internal/store"
	"github.com/ngthanh/engmaster/internal/ui/layout"
)

// StudentProgress is one row of the class overview.
type StudentProgress struct {
	Name       string
	Topic      string
	Answered   int
	Average    float64
	LastActive string
}

// mockClass is the simulated classroom roster. The progress sheet is
// write-only from this app, so the rest of the class is canned data;
// the signed-in learner's own numbers come from the local event log.
var mockClass = []StudentProgress{
	{Name: "Nguyen Van A", Topic: "Greetings", Answered: 30, Average: 8.5, LastActive: "2 mins ago"},
	{Name: "Tran Thi B", Topic: "Greetings", Answered: 15, Average: 6.2, LastActive: "1 hour ago"},
	{Name: "Le Van C", Topic: "Greetings", Answered: 30, Average: 9.1, LastActive: "Yesterday"},
	{Name: "Pham Thi D", Topic: "Greetings", Answered: 5, Average: 4.5, LastActive: "3 days ago"},
	{Name: "Hoang Van E", Topic: "Greetings", Answered: 22, Average: 7.8, LastActive: "5 mins ago"},
}

// statsLoadedMsg carries the merged class rows.
type statsLoadedMsg struct {
	Rows []StudentProgress
}

// DashboardScreen is the read-only class overview for the teacher role.
type DashboardScreen struct {
	events store.EventRepo
	user   identity.User
	rows   []StudentProgress
	loaded bool
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a dashboard screen for the signed-in teacher.
func New(events store.EventRepo, user identity.User) *DashboardScreen {
	return &DashboardScreen{
		events: events,
		user:   user,
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.loadStats()
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Ctrl+L", Description: "Logout"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		d.rows = msg.Rows
		d.loaded = true
		return d, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return d, d.loadStats()
		}
	}
	return d, nil
}

// loadStats merges the local learner's event aggregates into the mock
// roster asynchronously.
func (d *DashboardScreen) loadStats() tea.Cmd {
	return func() tea.Msg {
		rows := make([]StudentProgress, len(mockClass))
		copy(rows, mockClass)

		if d.events == nil {
			return statsLoadedMsg{Rows: rows}
		}

		ctx := context.Background()
		totals, err := d.events.Totals(ctx)
		if err != nil || totals.Answers == 0 {
			return statsLoadedMsg{Rows: rows}
		}

		topic := "Greetings"
		if usage, err := d.events.UsageByTopic(ctx); err == nil && len(usage) > 0 {
			top := usage[0]
			for _, u := range usage[1:] {
				if u.Answers > top.Answers {
					top = u
				}
			}
			topic = top.Topic
		}

		rows = append(rows, StudentProgress{
			Name:       d.user.Name,
			Topic:      topic,
			Answered:   totals.Answers,
			Average:    totals.AverageScore,
			LastActive: "just now",
		})
		return statsLoadedMsg{Rows: rows}
	}
}
