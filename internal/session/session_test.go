package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/grknsolak/it-certification-app/internal/bank"
)

func threeQuestionExam() bank.Exam {
	return bank.Exam{
		ID:           "net-101",
		Title:        "Networking Basics",
		TimeLimit:    1,
		PassingScore: 70,
		Questions: []bank.Question{
			{ID: "q1", Prompt: "first", Options: []string{"a", "b", "c", "d"}, Answer: bank.SingleAnswer(1)},
			{ID: "q2", Prompt: "second", Options: []string{"a", "b", "c", "d"}, Answer: bank.SingleAnswer(0)},
			{ID: "q3", Prompt: "third", Options: []string{"a", "b", "c", "d"}, Answer: bank.SingleAnswer(3)},
		},
	}
}

func multiExam() bank.Exam {
	return bank.Exam{
		ID:           "multi-101",
		Title:        "Multi Select",
		TimeLimit:    1,
		PassingScore: 70,
		Questions: []bank.Question{
			{ID: "m1", Prompt: "pick two", Options: []string{"a", "b", "c", "d"}, Answer: bank.MultiAnswer(0, 2)},
			{ID: "m2", Prompt: "pick one", Options: []string{"a", "b", "c", "d"}, Answer: bank.SingleAnswer(3)},
		},
	}
}

func TestSelectScalarReplaces(t *testing.T) {
	s := New(threeQuestionExam(), ModePractice)

	if err := s.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Select(2); err != nil {
		t.Fatalf("select: %v", err)
	}

	got, ok := s.WorkingSelection().Single()
	if !ok || got != 2 {
		t.Fatalf("working = %v (ok=%v), want 2", got, ok)
	}
}

func TestSelectRejectsOutOfRange(t *testing.T) {
	s := New(threeQuestionExam(), ModePractice)
	if err := s.Select(4); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
	if err := s.Select(-1); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
}

func TestMultiSelectToggleAndCap(t *testing.T) {
	s := New(multiExam(), ModePractice)

	mustSelect := func(option int) {
		t.Helper()
		if err := s.Select(option); err != nil {
			t.Fatalf("select %d: %v", option, err)
		}
	}

	mustSelect(0)
	mustSelect(1)
	// Key cardinality is 2: a third pick is ignored.
	mustSelect(3)
	got := s.WorkingSelection().Indices()
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("working = %v, want [0 1]", got)
	}

	// Re-picking a selected option removes it, freeing a slot.
	mustSelect(1)
	mustSelect(2)
	got = s.WorkingSelection().Indices()
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("working = %v, want [0 2]", got)
	}

	// Removing everything returns to no selection.
	mustSelect(0)
	mustSelect(2)
	if !s.WorkingSelection().IsNone() {
		t.Fatalf("working = %v, want none", s.WorkingSelection().Indices())
	}
}

func TestDeselectAllClearsCommittedAnswer(t *testing.T) {
	s := New(multiExam(), ModePractice)

	mustSelect := func(option int) {
		t.Helper()
		if err := s.Select(option); err != nil {
			t.Fatalf("select %d: %v", option, err)
		}
	}

	// Commit the correct set by navigating away.
	mustSelect(0)
	mustSelect(2)
	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if a, ok := s.AnswerAt(0); !ok || !a.IsCorrect {
		t.Fatalf("committed answer = %+v (ok=%v), want correct entry", a, ok)
	}

	// Come back and toggle both picks off again.
	if err := s.Previous(); err != nil {
		t.Fatalf("previous: %v", err)
	}
	mustSelect(0)
	mustSelect(2)

	if _, ok := s.AnswerAt(0); ok {
		t.Fatal("cleared selection should shadow the committed entry")
	}
	if s.AnsweredCount() != 0 {
		t.Fatalf("count = %d, want 0 after clearing", s.AnsweredCount())
	}

	// Navigating away must not resurrect the old entry.
	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if _, ok := s.AnswerAt(0); ok {
		t.Fatal("cleared answer survived the commit")
	}

	r, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if r.CorrectAnswers != 0 {
		t.Fatalf("correct = %d, want 0", r.CorrectAnswers)
	}
	if !r.Answers[0].Selected.IsNone() {
		t.Errorf("cleared question should carry the unanswered sentinel, got %v", r.Answers[0].Selected.Indices())
	}
	if r.Answers[0].IsCorrect {
		t.Error("cleared question must grade wrong")
	}
}

func TestRecommitLeavesEntryUnchanged(t *testing.T) {
	s := New(threeQuestionExam(), ModePractice)

	if err := s.Select(1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	first, ok := s.AnswerAt(0)
	if !ok {
		t.Fatal("answer for q1 not committed on navigation")
	}

	// Revisit and leave without touching the selection: the second commit
	// must write back the identical entry.
	if err := s.Previous(); err != nil {
		t.Fatalf("previous: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	second, ok := s.AnswerAt(0)
	if !ok {
		t.Fatal("answer for q1 lost on recommit")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("entry changed on recommit: %+v != %+v", second, first)
	}
}

func TestNavigationCommitsAndRestores(t *testing.T) {
	s := New(threeQuestionExam(), ModePractice)

	if err := s.Select(1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}

	a, ok := s.AnswerAt(0)
	if !ok {
		t.Fatal("answer for q1 not committed on navigation")
	}
	if !a.IsCorrect {
		t.Error("q1 answer should be graded correct")
	}
	if !s.WorkingSelection().IsNone() {
		t.Error("working selection should be empty on an unanswered question")
	}

	if err := s.Previous(); err != nil {
		t.Fatalf("previous: %v", err)
	}
	got, ok := s.WorkingSelection().Single()
	if !ok || got != 1 {
		t.Fatalf("restored working = %v (ok=%v), want 1", got, ok)
	}
}

func TestNavigationBoundaries(t *testing.T) {
	s := New(threeQuestionExam(), ModePractice)

	if err := s.Previous(); err != nil {
		t.Fatalf("previous at start: %v", err)
	}
	if s.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", s.Cursor())
	}

	if err := s.GoTo(2); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("next at end: %v", err)
	}
	if s.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", s.Cursor())
	}

	if err := s.GoTo(7); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("err = %v, want ErrInvalidPosition", err)
	}
}

func TestToggleBookmark(t *testing.T) {
	s := New(threeQuestionExam(), ModePractice)

	if err := s.ToggleBookmark(1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !s.Bookmarked(1) {
		t.Fatal("question 1 should be bookmarked")
	}
	if err := s.ToggleBookmark(1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if s.Bookmarked(1) {
		t.Fatal("bookmark should clear on second toggle")
	}
	if err := s.ToggleBookmark(9); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("err = %v, want ErrInvalidPosition", err)
	}
}

func TestSubmitGradesAndFillsUnanswered(t *testing.T) {
	s := New(threeQuestionExam(), ModePractice)

	// q1 correct, q2 wrong, q3 untouched.
	if err := s.Select(1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := s.Select(3); err != nil {
		t.Fatalf("select: %v", err)
	}

	r, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if r.TotalQuestions != 3 || r.CorrectAnswers != 1 || r.WrongAnswers != 2 {
		t.Fatalf("counts = %d/%d/%d, want 3/1/2", r.TotalQuestions, r.CorrectAnswers, r.WrongAnswers)
	}
	if r.Score != 33 {
		t.Fatalf("score = %d, want 33", r.Score)
	}
	if r.Passed(s.Exam().PassingScore) {
		t.Error("33 should not pass at threshold 70")
	}
	if r.TimeSpent != 0 {
		t.Errorf("practice timeSpent = %d, want 0", r.TimeSpent)
	}

	if len(r.Answers) != 3 {
		t.Fatalf("answers = %d entries, want 3", len(r.Answers))
	}
	for i, want := range []string{"q1", "q2", "q3"} {
		if r.Answers[i].QuestionID != want {
			t.Errorf("answer %d: question = %q, want %q", i, r.Answers[i].QuestionID, want)
		}
	}
	if !r.Answers[2].Selected.IsNone() {
		t.Error("unanswered q3 should carry the unanswered sentinel")
	}
	if r.Answers[2].IsCorrect {
		t.Error("unanswered q3 must grade wrong")
	}
}

func TestSubmitOnlyOnce(t *testing.T) {
	s := New(threeQuestionExam(), ModePractice)

	if _, err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.Submit(); !errors.Is(err, ErrSessionSubmitted) {
		t.Fatalf("err = %v, want ErrSessionSubmitted", err)
	}
	if err := s.Select(0); !errors.Is(err, ErrSessionSubmitted) {
		t.Fatalf("select after submit: err = %v, want ErrSessionSubmitted", err)
	}
	if err := s.GoTo(1); !errors.Is(err, ErrSessionSubmitted) {
		t.Fatalf("goto after submit: err = %v, want ErrSessionSubmitted", err)
	}
}

func TestScoreRounding(t *testing.T) {
	exam := poolExam(10, 0)
	s := New(exam, ModePractice)
	// Answer 7 of 10 correctly (correct index is 0 for every pool question).
	for i := 0; i < 10; i++ {
		if err := s.GoTo(i); err != nil {
			t.Fatalf("goto %d: %v", i, err)
		}
		option := 1
		if i < 7 {
			option = 0
		}
		if err := s.Select(option); err != nil {
			t.Fatalf("select: %v", err)
		}
	}
	r, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if r.Score != 70 {
		t.Fatalf("score = %d, want 70", r.Score)
	}
	if !r.Passed(70) {
		t.Error("70 should pass at threshold 70")
	}
}

func TestClockStartsOnFirstNavigation(t *testing.T) {
	s := New(threeQuestionExam(), ModeExam)

	if s.Started() {
		t.Fatal("clock must not start before the first question is shown")
	}
	if r := s.Tick(); r != nil {
		t.Fatal("tick before start must be a no-op")
	}
	if s.Remaining() != 60 {
		t.Fatalf("remaining = %d, want 60", s.Remaining())
	}

	if err := s.GoTo(0); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if !s.Started() {
		t.Fatal("clock should start on first navigation")
	}
	if r := s.Tick(); r != nil {
		t.Fatal("tick with time left must not submit")
	}
	if s.Remaining() != 59 {
		t.Fatalf("remaining = %d, want 59", s.Remaining())
	}
}

func TestClockExpiryAutoSubmitsOnce(t *testing.T) {
	s := New(threeQuestionExam(), ModeExam)
	if err := s.GoTo(0); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if err := s.Select(1); err != nil {
		t.Fatalf("select: %v", err)
	}

	var result *Result
	for i := 0; i < 60; i++ {
		r := s.Tick()
		if r != nil {
			if result != nil {
				t.Fatal("auto-submit fired more than once")
			}
			result = r
		}
	}
	if result == nil {
		t.Fatal("clock expiry should auto-submit")
	}
	if !s.Submitted() {
		t.Fatal("session should be submitted after expiry")
	}
	if s.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", s.Remaining())
	}
	if result.TimeSpent != 60 {
		t.Fatalf("timeSpent = %d, want 60", result.TimeSpent)
	}
	if result.CorrectAnswers != 1 {
		t.Fatalf("working selection not committed on auto-submit: correct = %d", result.CorrectAnswers)
	}

	if r := s.Tick(); r != nil {
		t.Fatal("tick after submission must be a no-op")
	}
}

func TestPracticeModeHasNoClock(t *testing.T) {
	s := New(threeQuestionExam(), ModePractice)
	if err := s.GoTo(1); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if r := s.Tick(); r != nil {
		t.Fatal("practice tick must be a no-op")
	}
	if s.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", s.Remaining())
	}
}

func TestManualSubmitRecordsTimeSpent(t *testing.T) {
	s := New(threeQuestionExam(), ModeExam)
	if err := s.GoTo(0); err != nil {
		t.Fatalf("goto: %v", err)
	}
	for i := 0; i < 15; i++ {
		s.Tick()
	}
	r, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if r.TimeSpent != 15 {
		t.Fatalf("timeSpent = %d, want 15", r.TimeSpent)
	}
}

func TestAnsweredCountIncludesWorking(t *testing.T) {
	s := New(threeQuestionExam(), ModePractice)
	if s.AnsweredCount() != 0 {
		t.Fatalf("count = %d, want 0", s.AnsweredCount())
	}
	if err := s.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if s.AnsweredCount() != 1 {
		t.Fatalf("count = %d, want 1", s.AnsweredCount())
	}
	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if s.AnsweredCount() != 1 {
		t.Fatalf("count after commit = %d, want 1", s.AnsweredCount())
	}
}

func TestRepeatedQuestionsAnsweredIndependently(t *testing.T) {
	exam := poolExam(2, 4)
	s := New(exam, ModeExam)

	// Positions 0 and 2 repeat the same pool question but keep separate
	// ledger entries.
	if err := s.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.GoTo(2); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if !s.WorkingSelection().IsNone() {
		t.Fatal("repeat occurrence must start unanswered")
	}
	if err := s.Select(1); err != nil {
		t.Fatalf("select: %v", err)
	}

	r, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if r.Answers[0].QuestionID == r.Answers[2].QuestionID {
		t.Fatal("repeat occurrences must have distinct ids")
	}
	if !r.Answers[0].IsCorrect || r.Answers[2].IsCorrect {
		t.Fatalf("grading crossed repeat occurrences: %v / %v", r.Answers[0].IsCorrect, r.Answers[2].IsCorrect)
	}
}
