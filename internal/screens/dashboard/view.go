package dashboard

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ngthanh/engmaster/internal/ui/components"
	"github.com/ngthanh/engmaster/internal/ui/theme"
)

func (d *DashboardScreen) View(width, height int) string {
	if !d.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading class progress...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Welcome back, %s. Here is the class progress.", d.user.Name)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.renderStatCards()))
	b.WriteString("\n\n")

	chartTitle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Class Performance (Greetings Topic)")
	chart := components.NewBarChart(d.chartBars(), min(width-30, 40)).View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, chartTitle+"\n\n"+chart))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.renderTable()))

	return b.String()
}

func (d *DashboardScreen) renderStatCards() string {
	totalAnswered := 0
	needsAttention := 0
	for _, r := range d.rows {
		totalAnswered += r.Answered
		if r.Average < 5 {
			needsAttention++
		}
	}

	card := func(label string, value int, c color.Color) string {
		return theme.Card.Render(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + "\n" +
				lipgloss.NewStyle().Foreground(c).Bold(true).Render(fmt.Sprintf("%d", value)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Active Students", len(d.rows), theme.Info),
		" ",
		card("Questions Answered", totalAnswered, theme.Primary),
		" ",
		card("Needs Attention", needsAttention, theme.Accent),
	)
}

func (d *DashboardScreen) chartBars() []components.Bar {
	bars := make([]components.Bar, 0, len(d.rows))
	for _, r := range d.rows {
		bars = append(bars, components.Bar{Label: r.Name, Value: r.Average})
	}
	return bars
}

func (d *DashboardScreen) renderTable() string {
	header := fmt.Sprintf("%-16s %-10s %-10s %-6s %-12s %s",
		"Student Name", "Topic", "Progress", "Avg", "Last Active", "Status")

	rows := []string{
		lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header),
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", lipgloss.Width(header))),
	}

	for _, r := range d.rows {
		status := "In Progress"
		statusStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		if r.Answered >= 30 {
			status = "Completed"
			statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		line := fmt.Sprintf("%-16s %-10s %-10s %s %-12s %s",
			r.Name,
			r.Topic,
			fmt.Sprintf("%d/30", r.Answered),
			theme.ScoreStyle(int(r.Average)).Render(fmt.Sprintf("%-6.1f", r.Average)),
			r.LastActive,
			statusStyle.Render(status),
		)
		rows = append(rows, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
