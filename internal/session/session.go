package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/grknsolak/it-certification-app/internal/bank"
)

// Mode selects the session's behavior: practice has no clock, exam runs a
// countdown and may repeat the pool to the real exam's length.
type Mode string

const (
	ModePractice Mode = "practice"
	ModeExam     Mode = "exam"
)

// Session is one attempt at an exam: the question sequence, the answer
// ledger, the cursor and the countdown clock. Safe for concurrent use.
//
// Selections are held in a working slot for the current question and
// committed to the ledger on navigation and on submit, so backtracking to
// a question restores what was picked and re-picking replaces it.
type Session struct {
	mu sync.Mutex

	id        string
	exam      bank.Exam
	mode      Mode
	questions []SessionQuestion

	answers   map[string]Answer
	bookmarks map[int]bool

	cursor  int
	working Selection

	remaining    int // seconds; exam mode only
	clockStarted bool
	submitted    bool
}

// New starts a session over the given exam. Exam mode arms the countdown
// at TimeLimit minutes; the clock does not run until the first question is
// shown (see Tick).
func New(exam bank.Exam, mode Mode) *Session {
	s := &Session{
		id:        uuid.New().String(),
		exam:      exam,
		mode:      mode,
		questions: buildQuestions(exam, mode),
		answers:   make(map[string]Answer),
		bookmarks: make(map[int]bool),
	}
	if mode == ModeExam {
		s.remaining = exam.TimeLimit * 60
	}
	return s
}

// ID is the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Exam returns the exam this session runs.
func (s *Session) Exam() bank.Exam { return s.exam }

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Len is the number of questions in the sequence.
func (s *Session) Len() int { return len(s.questions) }

// Question returns the question at pos.
func (s *Session) Question(pos int) (SessionQuestion, error) {
	if pos < 0 || pos >= len(s.questions) {
		return SessionQuestion{}, ErrInvalidPosition
	}
	return s.questions[pos], nil
}

// Cursor is the current question position.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Current returns the question under the cursor.
func (s *Session) Current() SessionQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions[s.cursor]
}

// WorkingSelection is the uncommitted pick for the current question.
func (s *Session) WorkingSelection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.working
}

// AnswerAt returns the ledger entry for the question at pos, if one
// exists. On the current question the working selection is authoritative,
// so the caller sees what submit would record even before the selection
// is committed.
func (s *Session) AnswerAt(pos int) (Answer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos < 0 || pos >= len(s.questions) {
		return Answer{}, false
	}
	if pos == s.cursor {
		if s.working.IsNone() {
			return Answer{}, false
		}
		q := s.questions[pos]
		return Answer{
			QuestionID: q.ID,
			Selected:   s.working,
			IsCorrect:  grade(q.Question.Answer, s.working),
		}, true
	}
	a, ok := s.answers[s.questions[pos].ID]
	return a, ok
}

// AnsweredCount is the number of questions with a selection. The working
// selection stands in for the current question's ledger entry, so a pick
// counts before it is committed and a cleared pick stops counting.
func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.answers)
	_, committed := s.answers[s.questions[s.cursor].ID]
	switch {
	case !committed && !s.working.IsNone():
		n++
	case committed && s.working.IsNone():
		n--
	}
	return n
}

// Bookmarked reports whether the question at pos is flagged for review.
func (s *Session) Bookmarked(pos int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookmarks[pos]
}

// Remaining is the countdown in seconds. Zero in practice mode.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Started reports whether the clock has begun running.
func (s *Session) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clockStarted
}

// Submitted reports whether the session has been finalized.
func (s *Session) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

// Select records the given option for the current question. On a scalar
// question the pick replaces any previous one. On a multi-select question
// the pick toggles: selecting an already-selected option removes it, and
// new picks beyond the answer key's cardinality are silently ignored.
func (s *Session) Select(option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return ErrSessionSubmitted
	}
	q := s.questions[s.cursor].Question
	if option < 0 || option >= len(q.Options) {
		return ErrInvalidOption
	}

	if !q.Answer.IsMulti() {
		s.working = SingleSelection(option)
		return nil
	}

	indices := s.working.Indices()
	for i, have := range indices {
		if have == option {
			indices = append(indices[:i], indices[i+1:]...)
			if len(indices) == 0 {
				s.working = NoSelection()
			} else {
				s.working = MultiSelection(indices...)
			}
			return nil
		}
	}
	if len(indices) >= q.Answer.Count() {
		return nil
	}
	s.working = MultiSelection(append(indices, option)...)
	return nil
}

// GoTo moves the cursor to pos, committing the working selection for the
// question being left. The first navigation starts the clock.
func (s *Session) GoTo(pos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return ErrSessionSubmitted
	}
	if pos < 0 || pos >= len(s.questions) {
		return ErrInvalidPosition
	}
	s.commitWorking()
	s.cursor = pos
	s.loadWorking()
	s.clockStarted = true
	return nil
}

// Next advances the cursor by one. At the last question it is a no-op.
func (s *Session) Next() error {
	s.mu.Lock()
	pos := s.cursor + 1
	last := len(s.questions) - 1
	s.mu.Unlock()
	if pos > last {
		return nil
	}
	return s.GoTo(pos)
}

// Previous moves the cursor back by one. At the first question it is a
// no-op.
func (s *Session) Previous() error {
	s.mu.Lock()
	pos := s.cursor - 1
	s.mu.Unlock()
	if pos < 0 {
		return nil
	}
	return s.GoTo(pos)
}

// ToggleBookmark flags or unflags the question at pos for review.
func (s *Session) ToggleBookmark(pos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos < 0 || pos >= len(s.questions) {
		return ErrInvalidPosition
	}
	if s.bookmarks[pos] {
		delete(s.bookmarks, pos)
	} else {
		s.bookmarks[pos] = true
	}
	return nil
}

// Tick advances the exam clock by one second. It returns a non-nil Result
// exactly once, when the clock reaches zero and the session auto-submits.
// Ticks before the clock starts, after submission, or in practice mode
// are no-ops.
func (s *Session) Tick() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeExam || !s.clockStarted || s.submitted {
		return nil
	}
	s.remaining--
	if s.remaining > 0 {
		return nil
	}
	s.remaining = 0
	r := s.submitLocked()
	return &r
}

// Submit finalizes the session and produces the graded result. A session
// can be submitted once.
func (s *Session) Submit() (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return nil, ErrSessionSubmitted
	}
	r := s.submitLocked()
	return &r, nil
}

func (s *Session) submitLocked() Result {
	s.commitWorking()
	for _, q := range s.questions {
		if _, ok := s.answers[q.ID]; !ok {
			s.answers[q.ID] = Answer{
				QuestionID: q.ID,
				Selected:   NoSelection(),
			}
		}
	}

	timeSpent := 0
	if s.mode == ModeExam {
		timeSpent = s.exam.TimeLimit*60 - s.remaining
		if timeSpent < 0 {
			timeSpent = 0
		}
	}

	s.submitted = true
	return buildResult(s.exam.ID, s.questions, s.answers, timeSpent)
}

// commitWorking writes the working selection into the ledger entry for
// the question under the cursor, overwriting whatever was there. A
// cleared selection removes the entry, so deselecting every pick and
// navigating away leaves the question unanswered. Callers must hold the
// mutex.
func (s *Session) commitWorking() {
	q := s.questions[s.cursor]
	if s.working.IsNone() {
		delete(s.answers, q.ID)
		return
	}
	s.answers[q.ID] = Answer{
		QuestionID: q.ID,
		Selected:   s.working,
		IsCorrect:  grade(q.Question.Answer, s.working),
	}
}

// loadWorking primes the working slot from the ledger entry for the
// question under the cursor. Callers must hold the mutex.
func (s *Session) loadWorking() {
	if a, ok := s.answers[s.questions[s.cursor].ID]; ok {
		s.working = a.Selected
		return
	}
	s.working = NoSelection()
}
