package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/grknsolak/it-certification-app/internal/bank"
	"github.com/grknsolak/it-certification-app/internal/router"
	"github.com/grknsolak/it-certification-app/internal/screen"
	"github.com/grknsolak/it-certification-app/internal/screens/examlist"
	"github.com/grknsolak/it-certification-app/internal/screens/history"
	"github.com/grknsolak/it-certification-app/internal/store"
	"github.com/grknsolak/it-certification-app/internal/ui/components"
	"github.com/grknsolak/it-certification-app/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu  components.Menu
	stats store.Stats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(catalog *bank.Catalog, results store.ResultRepo) *HomeScreen {
	// Stats are best-effort; an empty history renders zeros.
	var stats store.Stats
	if results != nil {
		stats, _ = results.Stats(context.Background())
	}

	items := []components.MenuItem{
		{Label: "BROWSE EXAMS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: examlist.New(catalog, results)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(catalog, results)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		stats: stats,
	}
}

// Stats returns the history aggregates shown in the header.
func (h *HomeScreen) Stats() store.Stats {
	return h.stats
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("IT Certification Practice")
	subtitle := theme.Subtitle.Width(width).Render("Study for AWS, CompTIA, GCP, Kubernetes and more")
	sections = append(sections, title, subtitle)

	statsLine := fmt.Sprintf("Exams completed: %d    Average score: %d%%    Questions answered: %d",
		h.stats.ExamsCompleted, h.stats.AverageScore, h.stats.TotalQuestions)
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
