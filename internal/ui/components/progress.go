package components

import (
	"fmt"
	"strings"

	"github.com/ngthanh/engmaster/internal/ui/theme"
)

// ProgressBar renders a fixed-width bar with a "current/total" label.
type ProgressBar struct {
	Width int
}

// NewProgressBar creates a progress bar of the given width.
func NewProgressBar(width int) ProgressBar {
	if width <= 0 {
		width = 20
	}
	return ProgressBar{Width: width}
}

// View renders the bar for current of total steps.
func (p ProgressBar) View(current, total int) string {
	if total <= 0 {
		return ""
	}
	if current > total {
		current = total
	}

	filled := current * p.Width / total
	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", p.Width-filled))

	return fmt.Sprintf("%s %d/%d", bar, current, total)
}
