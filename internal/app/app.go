package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/grknsolak/it-certification-app/internal/bank"
	"github.com/grknsolak/it-certification-app/internal/router"
	"github.com/grknsolak/it-certification-app/internal/screen"
	"github.com/grknsolak/it-certification-app/internal/screens/home"
	"github.com/grknsolak/it-certification-app/internal/store"
	"github.com/grknsolak/it-certification-app/internal/ui/layout"
)

// Options carries the dependencies for the TUI.
type Options struct {
	Catalog *bank.Catalog
	Results store.ResultRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	results store.ResultRepo
	stats   store.Stats
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		router:  router.New(home.New(opts.Catalog, opts.Results)),
		results: opts.Results,
	}
	m.refreshStats()
	return m
}

// refreshStats reloads the header aggregates. Failures leave the
// previous values in place.
func (m *AppModel) refreshStats() {
	if m.results == nil {
		return
	}
	if stats, err := m.results.Stats(context.Background()); err == nil {
		m.stats = stats
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// Navigation marks a flow boundary; pick up any new results.
		m.refreshStats()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				// Screens with their own Esc handling (confirm dialogs,
				// history) consume the key before it reaches here.
				if _, handles := m.router.Active().(escHandler); !handles {
					return m, func() tea.Msg { return router.PopScreenMsg{} }
				}
			} else {
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// escHandler marks screens that process Esc themselves instead of the
// default pop behavior.
type escHandler interface {
	HandlesEscape()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats.ExamsCompleted, m.stats.AverageScore, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
