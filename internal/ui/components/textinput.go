package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ngthanh/engmaster/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for free-text answer entry.
// While disabled (grading in flight) it swallows all input so a second
// submission can't be triggered.
type AnswerInput struct {
	Model     textinput.Model
	disabled  bool
	submitted bool
	good      bool
}

// NewAnswerInput creates a new styled answer input.
func NewAnswerInput(placeholder string, charLimit int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages. Disabled inputs ignore everything.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.disabled {
		return a, nil
	}
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input, with a pass/fail mark once graded.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.good {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Reset clears the input for the next question.
func (a *AnswerInput) Reset() {
	a.Model.SetValue("")
	a.disabled = false
	a.submitted = false
}

// Submit marks the input as graded with a pass/fail result.
func (a *AnswerInput) Submit(good bool) {
	a.submitted = true
	a.good = good
}

// SetDisabled toggles whether the input accepts keystrokes.
func (a *AnswerInput) SetDisabled(disabled bool) {
	a.disabled = disabled
}

// Disabled reports whether the input is currently ignoring keystrokes.
func (a AnswerInput) Disabled() bool {
	return a.disabled
}
