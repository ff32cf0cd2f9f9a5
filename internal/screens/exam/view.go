package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/grknsolak/it-certification-app/internal/session"
	"github.com/grknsolak/it-certification-app/internal/ui/theme"
)

func (s *ExamScreen) View(width, height int) string {
	switch s.phase {
	case phaseOverview:
		return s.renderOverview(width)
	case phaseSubmitConfirm:
		return s.renderSubmitConfirm(width)
	case phaseQuitConfirm:
		return renderQuitConfirm(width)
	}
	return s.renderQuestion(width)
}

func (s *ExamScreen) renderOverview(width int) string {
	e := s.exam

	questionCount := len(e.Questions)
	if e.RealExamQuestionCount > 0 {
		questionCount = e.RealExamQuestionCount
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("%s %s", e.Icon, e.Title)))
	b.WriteString("\n\n")
	if e.Description != "" {
		b.WriteString(theme.Subtitle.Width(width).Render(e.Description))
		b.WriteString("\n\n")
	}

	details := []string{
		fmt.Sprintf("Questions      %d", questionCount),
		fmt.Sprintf("Time limit     %d minutes", e.TimeLimit),
		fmt.Sprintf("Passing score  %d%%", e.PassingScore),
	}
	for _, d := range details {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Text).
			Render(d))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Primary).Bold(true).
		Render("[E] Timed exam"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Secondary).
		Render("[P] Untimed practice"))

	return b.String()
}

func (s *ExamScreen) renderQuestion(width int) string {
	sq := s.sess.Current()
	pos := s.sess.Cursor()
	total := s.sess.Len()

	var b strings.Builder

	// Info line: position and answered count left, countdown right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", pos+1, total))
	infoLeft += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("   %d answered", s.sess.AnsweredCount()))
	if s.sess.Bookmarked(pos) {
		infoLeft += lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("   ⚑ flagged")
	}

	var infoRight string
	if s.sess.Mode() == session.ModeExam {
		remaining := s.sess.Remaining()
		timerStr := fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
		style := theme.TimerNormal
		if remaining < 60 {
			style = theme.TimerLow
		}
		infoRight = style.Render(timerStr + "  ")
	}

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 2
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	promptStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(sq.Question.Prompt)))
	b.WriteString("\n\n")

	if sq.Question.Answer.IsMulti() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(fmt.Sprintf("Choose %d answers", sq.Question.Answer.Count())))
		b.WriteString("\n\n")
	}

	// Options with the current picks marked.
	selected := s.sess.WorkingSelection().Indices()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View(selected)))

	if s.jumping {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Render("Jump to question: " + s.jump.View()))
	}

	return b.String()
}

func (s *ExamScreen) renderSubmitConfirm(width int) string {
	unanswered := s.sess.Len() - s.sess.AnsweredCount()

	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("Submit this attempt?"))
	b.WriteString("\n")
	if unanswered > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
			Render(fmt.Sprintf("%d questions are still unanswered and will count as wrong.", unanswered)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("All questions answered."))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Success).
		Render("[Y] Yes, submit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("Abandon this attempt?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("Nothing will be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
