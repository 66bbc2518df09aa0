package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ngthanh/engmaster/internal/ui/theme"
)

// Bar is one entry in a horizontal BarChart.
type Bar struct {
	Label string
	Value float64 // 0-10 scale
}

// BarChart renders horizontal score bars, one row per entry.
type BarChart struct {
	Bars     []Bar
	MaxWidth int
}

// NewBarChart creates a chart with bars capped at maxWidth cells.
func NewBarChart(bars []Bar, maxWidth int) BarChart {
	if maxWidth <= 0 {
		maxWidth = 30
	}
	return BarChart{Bars: bars, MaxWidth: maxWidth}
}

// View renders the chart. Labels are right-aligned to the widest one.
func (c BarChart) View() string {
	if len(c.Bars) == 0 {
		return ""
	}

	labelWidth := 0
	for _, b := range c.Bars {
		if w := lipgloss.Width(b.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var rows []string
	for _, b := range c.Bars {
		v := b.Value
		if v < 0 {
			v = 0
		}
		if v > 10 {
			v = 10
		}
		width := int(v / 10 * float64(c.MaxWidth))

		bar := barStyle(v).Render(strings.Repeat("█", width))
		label := lipgloss.NewStyle().Width(labelWidth).Align(lipgloss.Right).Render(b.Label)
		rows = append(rows, fmt.Sprintf("%s %s %.1f", label, bar, b.Value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func barStyle(v float64) lipgloss.Style {
	switch {
	case v >= 8:
		return lipgloss.NewStyle().Foreground(theme.Success)
	case v >= 5:
		return lipgloss.NewStyle().Foreground(theme.Primary)
	default:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	}
}
