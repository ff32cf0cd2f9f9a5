package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/grknsolak/it-certification-app/internal/bank"
	"github.com/grknsolak/it-certification-app/internal/router"
	"github.com/grknsolak/it-certification-app/internal/screen"
	"github.com/grknsolak/it-certification-app/internal/screens/review"
	"github.com/grknsolak/it-certification-app/internal/session"
	"github.com/grknsolak/it-certification-app/internal/ui/components"
	"github.com/grknsolak/it-certification-app/internal/ui/layout"
	"github.com/grknsolak/it-certification-app/internal/ui/theme"
)

// ResultsScreen shows the outcome of a finished attempt.
type ResultsScreen struct {
	exam      bank.Exam
	questions []session.SessionQuestion
	result    *session.Result
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(exam bank.Exam, questions []session.SessionQuestion, result *session.Result) *ResultsScreen {
	return &ResultsScreen{
		exam:      exam,
		questions: questions,
		result:    result,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Review answers"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r", "R", "enter":
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: review.New(s.questions, s.result.Answers),
			}
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder
	b.WriteString("\n\n")

	passed := r.Passed(s.exam.PassingScore)
	if passed {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("PASSED"))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("FAILED"))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Score: %d%%", r.Score)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(fmt.Sprintf("Passing score: %d%%", s.exam.PassingScore)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(r.Score)/100, false, min(width-20, 50))
	if passed {
		bar.Fill = theme.Success
	} else {
		bar.Fill = theme.Error
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	lines := []string{
		fmt.Sprintf("Correct    %d", r.CorrectAnswers),
		fmt.Sprintf("Wrong      %d", r.WrongAnswers),
		fmt.Sprintf("Total      %d", r.TotalQuestions),
	}
	if r.TimeSpent > 0 {
		lines = append(lines, fmt.Sprintf("Time       %d:%02d", r.TimeSpent/60, r.TimeSpent%60))
	}
	for _, line := range lines {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Text).
			Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("Press R to review your answers"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
