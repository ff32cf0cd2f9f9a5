package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/grknsolak/it-certification-app/internal/bank"
	"github.com/grknsolak/it-certification-app/internal/screen"
	"github.com/grknsolak/it-certification-app/internal/session"
	"github.com/grknsolak/it-certification-app/internal/store"
	"github.com/grknsolak/it-certification-app/internal/ui/layout"
	"github.com/grknsolak/it-certification-app/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []store.StoredResult
	Err     error
}

// HistoryScreen displays past exam attempts.
type HistoryScreen struct {
	catalog  *bank.Catalog
	repo     store.ResultRepo
	results  []store.StoredResult
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(catalog *bank.Catalog, repo store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{
		catalog:  catalog,
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		results, err := s.repo.List(context.Background(), store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Results: results}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take an exam!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sr := range s.results {
		r := sr.Result
		dateStr := r.CompletedAt.Local().Format("Jan 02, 2006 15:04")
		title := s.examTitle(r.ExamID)

		passing := 0
		if exam, err := s.catalog.Get(r.ExamID); err == nil {
			passing = exam.PassingScore
		}
		verdict := theme.Incorrect.Render("fail")
		if r.Passed(passing) {
			verdict = theme.Correct.Render("pass")
		}

		modeStr := ""
		if sr.Mode == session.ModePractice {
			modeStr = "  practice"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d%%  %s%s",
			prefix, dateStr, title, r.Score, verdict, modeStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %d/%d correct", r.CorrectAnswers, r.TotalQuestions)
			if r.TimeSpent > 0 {
				detail += fmt.Sprintf("  ·  %d:%02d taken", r.TimeSpent/60, r.TimeSpent%60)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *HistoryScreen) examTitle(examID string) string {
	if exam, err := s.catalog.Get(examID); err == nil {
		return exam.Title
	}
	return examID
}
