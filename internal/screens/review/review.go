package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/grknsolak/it-certification-app/internal/screen"
	"github.com/grknsolak/it-certification-app/internal/session"
	"github.com/grknsolak/it-certification-app/internal/ui/layout"
	"github.com/grknsolak/it-certification-app/internal/ui/theme"
)

// ReviewScreen walks through a finished attempt question by question,
// showing the user's pick against the answer key with explanations.
type ReviewScreen struct {
	questions []session.SessionQuestion
	answers   map[string]session.Answer
	cursor    int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen over the attempt's questions and answers.
func New(questions []session.SessionQuestion, answers []session.Answer) *ReviewScreen {
	byID := make(map[string]session.Answer, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = a
	}
	return &ReviewScreen{
		questions: questions,
		answers:   byID,
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h", "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "right", "l", "down", "j", "enter", "space":
		if s.cursor < len(s.questions)-1 {
			s.cursor++
		}
	}
	return s, nil
}

func (s *ReviewScreen) View(width, height int) string {
	if len(s.questions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Nothing to review.")
	}

	sq := s.questions[s.cursor]
	answer := s.answers[sq.ID]

	var b strings.Builder

	verdict := theme.Incorrect.Render("✗ wrong")
	if answer.IsCorrect {
		verdict = theme.Correct.Render("✓ correct")
	}
	if answer.Selected.IsNone() {
		verdict = lipgloss.NewStyle().Foreground(theme.TextDim).Render("— unanswered")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.cursor+1, len(s.questions))))
	b.WriteString("   " + verdict)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n\n")

	promptStyle := lipgloss.NewStyle().
		Width(minInt(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(sq.Question.Prompt)))
	b.WriteString("\n\n")

	var options strings.Builder
	for i, opt := range sq.Question.Options {
		chosen := answer.Selected.Contains(i)
		correct := sq.Question.Answer.Contains(i)

		mark := "   "
		switch {
		case chosen && correct:
			mark = " ✓ "
		case chosen && !correct:
			mark = " ✗ "
		case !chosen && correct:
			mark = " ● "
		}

		line := fmt.Sprintf("%s%c)  %s", mark, 'A'+i, opt)
		switch {
		case correct:
			options.WriteString(theme.Correct.Render(line))
		case chosen:
			options.WriteString(theme.Incorrect.Render(line))
		default:
			options.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		options.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, options.String()))

	if sq.Question.Explanation != "" {
		b.WriteString("\n")
		expStyle := lipgloss.NewStyle().
			Width(minInt(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			expStyle.Render(sq.Question.Explanation)))
		b.WriteString("\n")
	}

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
