package worksheet

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ngthanh/engmaster/internal/ui/components"
	"github.com/ngthanh/engmaster/internal/ui/theme"
	wk "github.com/ngthanh/engmaster/internal/worksheet"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (w *WorksheetScreen) View(width, height int) string {
	switch w.sess.Status {
	case wk.StatusIdle, wk.StatusLoading:
		return w.renderLoading(width)
	case wk.StatusComplete:
		return w.renderComplete(width)
	case wk.StatusReview:
		return w.renderReview(width)
	default:
		return w.renderQuestion(width)
	}
}

func (w *WorksheetScreen) renderLoading(width int) string {
	frame := spinnerFrames[w.spinnerFrame%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render(fmt.Sprintf("\n\n\n  %s AI đang soạn bài tập cho bạn...", frame))
}

// renderTopicLine renders the topic header with question progress.
func (w *WorksheetScreen) renderTopicLine(width int) string {
	answered, total := w.sess.Progress()
	current := answered + 1
	if current > total {
		current = total
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Chủ đề: %s", w.sess.Topic))

	bar := components.NewProgressBar(16)
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Câu hỏi %d/%d  ", current, total) + bar.View(answered, total))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (w *WorksheetScreen) renderQuestion(width int) string {
	q, ok := w.sess.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(w.renderTopicLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	if w.sess.Tip != "" {
		tip := theme.TipBox.Width(min(width-8, 70)).Render(
			lipgloss.NewStyle().Foreground(theme.Info).Bold(true).Render("Góc văn hóa") +
				"\n" +
				lipgloss.NewStyle().Foreground(theme.Text).Italic(true).Render(w.sess.Tip))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tip))
		b.WriteString("\n\n")
	}

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n")

	if q.Context != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("(" + q.Context + ")"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	answerLine := "Câu trả lời: " + w.input.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answerLine))

	if w.sess.Status == wk.StatusGrading {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Đang chấm điểm..."))
	}

	return b.String()
}

func (w *WorksheetScreen) renderReview(width int) string {
	result, ok := w.sess.LastResult()
	if !ok {
		return ""
	}
	a := result.Assessment

	var b strings.Builder
	b.WriteString(w.renderTopicLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	score := theme.ScoreStyle(a.Score).Render(fmt.Sprintf(" %d/10 ", a.Score))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(score + "  " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(a.Praise)))
	b.WriteString("\n\n")

	cw := min(width-8, 70)
	section := func(label string, style lipgloss.Style, text string) {
		block := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(label) +
			"\n" + style.Width(cw).Render(text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n\n")
	}

	section("Câu trả lời của bạn", lipgloss.NewStyle().Foreground(theme.Text), result.Answer)
	section("Câu trả lời gợi ý", lipgloss.NewStyle().Foreground(theme.Success), a.Correction)
	section("Lời khuyên", lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true), "\""+a.Feedback+"\"")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter: câu tiếp theo   S: nghe đáp án"))

	return b.String()
}

func (w *WorksheetScreen) renderComplete(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Hoàn thành xuất sắc!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Bạn đã hoàn thành bộ câu hỏi chủ đề %s.", w.sess.Topic)))
	b.WriteString("\n\n")

	avg := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%.1f", w.sess.AverageScore())) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(" / 10")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Điểm trung bình  ") + avg))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter: làm bài tiếp theo (câu hỏi mới)"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
