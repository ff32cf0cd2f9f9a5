package examlist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/grknsolak/it-certification-app/internal/bank"
	"github.com/grknsolak/it-certification-app/internal/router"
	"github.com/grknsolak/it-certification-app/internal/screen"
	"github.com/grknsolak/it-certification-app/internal/screens/exam"
	"github.com/grknsolak/it-certification-app/internal/store"
	"github.com/grknsolak/it-certification-app/internal/ui/layout"
	"github.com/grknsolak/it-certification-app/internal/ui/theme"
)

// ExamListScreen lets the user browse the catalog and pick an exam.
type ExamListScreen struct {
	exams    []bank.Exam
	results  store.ResultRepo
	selected int
}

var _ screen.Screen = (*ExamListScreen)(nil)
var _ screen.KeyHintProvider = (*ExamListScreen)(nil)

// New creates a new ExamListScreen over the given catalog.
func New(catalog *bank.Catalog, results store.ResultRepo) *ExamListScreen {
	return &ExamListScreen{
		exams:   catalog.Exams(),
		results: results,
	}
}

func (s *ExamListScreen) Init() tea.Cmd {
	return nil
}

func (s *ExamListScreen) Title() string {
	return "Exams"
}

func (s *ExamListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExamListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.exams)-1 {
			s.selected++
		}
	case "enter":
		if len(s.exams) == 0 {
			return s, nil
		}
		picked := s.exams[s.selected]
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: exam.New(picked, s.results)}
		}
	}
	return s, nil
}

func (s *ExamListScreen) View(width, height int) string {
	if len(s.exams) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No exams in the question bank.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.exams {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		questionCount := len(e.Questions)
		if e.RealExamQuestionCount > 0 {
			questionCount = e.RealExamQuestionCount
		}

		line := fmt.Sprintf("%s%s %s", prefix, e.Icon, e.Title)
		detail := fmt.Sprintf("      %s · %d questions · %d min · pass at %d%%",
			e.Category, questionCount, e.TimeLimit, e.PassingScore)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
		b.WriteString("\n")

		if i == s.selected && e.Description != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("      "+e.Description)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
