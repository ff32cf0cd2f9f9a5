package exam

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/grknsolak/it-certification-app/internal/bank"
	"github.com/grknsolak/it-certification-app/internal/router"
	"github.com/grknsolak/it-certification-app/internal/screen"
	"github.com/grknsolak/it-certification-app/internal/screens/results"
	"github.com/grknsolak/it-certification-app/internal/session"
	"github.com/grknsolak/it-certification-app/internal/store"
	"github.com/grknsolak/it-certification-app/internal/ui/components"
	"github.com/grknsolak/it-certification-app/internal/ui/layout"
)

type phase int

const (
	phaseOverview phase = iota
	phaseActive
	phaseSubmitConfirm
	phaseQuitConfirm
)

// ExamScreen drives one attempt at an exam: the overview, the question
// flow with the countdown, and the submit handoff to the results screen.
type ExamScreen struct {
	exam    bank.Exam
	results store.ResultRepo

	sess    *session.Session
	options components.OptionList
	jump    components.TextInput

	phase   phase
	jumping bool
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// HandlesEscape tells the app shell to route Esc here instead of popping;
// an in-flight attempt needs the abandon confirmation first.
func (s *ExamScreen) HandlesEscape() {}

// New creates an ExamScreen showing the overview for the given exam.
func New(exam bank.Exam, resultRepo store.ResultRepo) *ExamScreen {
	return &ExamScreen{
		exam:    exam,
		results: resultRepo,
	}
}

func (s *ExamScreen) Init() tea.Cmd {
	return nil
}

func (s *ExamScreen) Title() string {
	return s.exam.Title
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseOverview:
		return []layout.KeyHint{
			{Key: "E", Description: "Exam mode"},
			{Key: "P", Description: "Practice mode"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseSubmitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.jumping {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Options"},
		{Key: "Enter", Description: "Pick"},
		{Key: "←→", Description: "Question"},
		{Key: "G", Description: "Jump"},
		{Key: "B", Description: "Flag"},
		{Key: "S", Description: "Submit"},
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()

	case resultSavedMsg:
		return s.handleResultSaved(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseOverview:
		switch key {
		case "e", "E":
			return s, s.start(session.ModeExam)
		case "p", "P":
			return s, s.start(session.ModePractice)
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case phaseSubmitConfirm:
		switch key {
		case "y", "Y":
			s.phase = phaseActive
			return s, s.submit()
		case "n", "N", "esc":
			s.phase = phaseActive
		}
		return s, nil

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.phase = phaseActive
		}
		return s, nil
	}

	// Active question phase.
	if s.jumping {
		return s.handleJumpKey(msg)
	}

	switch key {
	case "esc":
		s.phase = phaseQuitConfirm
		return s, nil
	case "s", "S":
		s.phase = phaseSubmitConfirm
		return s, nil
	case "enter", "space":
		if err := s.sess.Select(s.options.Cursor); err != nil {
			return s, nil
		}
		return s, nil
	case "left", "h":
		if err := s.sess.Previous(); err == nil {
			s.syncQuestion()
		}
		return s, nil
	case "right", "l", "n":
		if err := s.sess.Next(); err == nil {
			s.syncQuestion()
		}
		return s, nil
	case "g", "G":
		s.jumping = true
		s.jump = components.NewTextInput(fmt.Sprintf("1-%d", s.sess.Len()), true, 4)
		return s, s.jump.Init()
	case "b", "B":
		_ = s.sess.ToggleBookmark(s.sess.Cursor())
		return s, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		option := int(key[0] - '1')
		if option < len(s.options.Options) {
			s.options.Cursor = option
			_ = s.sess.Select(option)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

func (s *ExamScreen) handleJumpKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.jumping = false
		return s, nil
	case "enter":
		n, err := s.jump.NumericValue()
		if err == nil {
			if err := s.sess.GoTo(n - 1); err == nil {
				s.syncQuestion()
			}
		}
		s.jumping = false
		return s, nil
	}

	var cmd tea.Cmd
	s.jump, cmd = s.jump.Update(msg)
	return s, cmd
}

// start builds the session and shows the first question. Exam mode also
// arms the 1-second timer.
func (s *ExamScreen) start(mode session.Mode) tea.Cmd {
	s.sess = session.New(s.exam, mode)
	s.phase = phaseActive
	if err := s.sess.GoTo(0); err != nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.syncQuestion()

	if mode == session.ModeExam {
		return tickCmd()
	}
	return nil
}

// syncQuestion rebuilds the option list for the question under the cursor.
func (s *ExamScreen) syncQuestion() {
	q := s.sess.Current().Question
	s.options = components.NewOptionList(q.Options, q.Answer.IsMulti())
}

func (s *ExamScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.sess.Submitted() {
		return s, nil
	}

	if r := s.sess.Tick(); r != nil {
		// Time ran out; the session auto-submitted.
		return s, s.persist(r)
	}
	return s, tickCmd()
}

func (s *ExamScreen) submit() tea.Cmd {
	r, err := s.sess.Submit()
	if err != nil {
		return nil
	}
	return s.persist(r)
}

// persist saves the result in the background. Failures degrade to a
// warning; the results screen still renders.
func (s *ExamScreen) persist(r *session.Result) tea.Cmd {
	sessionID := s.sess.ID()
	mode := s.sess.Mode()
	return func() tea.Msg {
		if s.results == nil {
			return resultSavedMsg{Result: r}
		}
		err := s.results.Append(context.Background(), sessionID, mode, *r)
		return resultSavedMsg{Result: r, Err: err}
	}
}

func (s *ExamScreen) handleResultSaved(msg resultSavedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not save result:", msg.Err)
	}

	questions := make([]session.SessionQuestion, 0, s.sess.Len())
	for i := 0; i < s.sess.Len(); i++ {
		q, _ := s.sess.Question(i)
		questions = append(questions, q)
	}

	exam := s.exam
	result := msg.Result
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(exam, questions, result),
		}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
