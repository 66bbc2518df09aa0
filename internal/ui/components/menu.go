package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ngthanh/engmaster/internal/ui/theme"
)

// MenuItem is a single selectable entry in a Menu.
type MenuItem struct {
	Label    string
	Desc     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with keyboard navigation.
type Menu struct {
	Items  []MenuItem
	Cursor int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, it := range items {
		if !it.Disabled {
			m.Cursor = i
			break
		}
	}
	return m
}

// Update handles navigation keys and returns the action command on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.Cursor = m.prevEnabled()
	case "down", "j":
		m.Cursor = m.nextEnabled()
	case "enter":
		item := m.Items[m.Cursor]
		if !item.Disabled && item.Action != nil {
			return m, item.Action()
		}
	}
	return m, nil
}

func (m Menu) prevEnabled() int {
	for i := m.Cursor - 1; i >= 0; i-- {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Cursor
}

func (m Menu) nextEnabled() int {
	for i := m.Cursor + 1; i < len(m.Items); i++ {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Cursor
}

// View renders the menu.
func (m Menu) View() string {
	var rows []string
	for i, item := range m.Items {
		label := item.Label
		if item.Desc != "" {
			label += "  " + theme.Hint.Render(item.Desc)
		}

		switch {
		case item.Disabled:
			rows = append(rows, "  "+theme.Hint.Render(item.Label))
		case i == m.Cursor:
			rows = append(rows, theme.Selected.Render("▸ "+label))
		default:
			rows = append(rows, "  "+label)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
