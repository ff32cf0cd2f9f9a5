package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/grknsolak/it-certification-app/internal/ui/theme"
)

// OptionList is the answer selector for one question. It tracks the
// highlight cursor only; which options are actually picked is the
// caller's state and passed in at render time.
type OptionList struct {
	Options []string
	Cursor  int
	Multi   bool
}

// NewOptionList creates an option list for the given choices.
func NewOptionList(options []string, multi bool) OptionList {
	return OptionList{Options: options, Multi: multi}
}

// Init returns nil.
func (l OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Pick/toggle keys are handled by the
// owning screen.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	}

	return l, nil
}

// View renders the options with pick marks. selected holds the option
// indices currently picked for this question.
func (l OptionList) View(selected []int) string {
	picked := make(map[int]bool, len(selected))
	for _, i := range selected {
		picked[i] = true
	}

	var s string
	for i, opt := range l.Options {
		mark := "( )"
		if l.Multi {
			mark = "[ ]"
			if picked[i] {
				mark = "[x]"
			}
		} else if picked[i] {
			mark = "(•)"
		}

		prefix := "  "
		if i == l.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %c)  %s", prefix, mark, 'A'+i, opt)

		switch {
		case i == l.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case picked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
