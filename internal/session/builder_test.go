package session

import (
	"fmt"
	"testing"

	"github.com/grknsolak/it-certification-app/internal/bank"
)

func poolExam(poolSize, realCount int) bank.Exam {
	questions := make([]bank.Question, 0, poolSize)
	for i := 0; i < poolSize; i++ {
		questions = append(questions, bank.Question{
			ID:      fmt.Sprintf("q%d", i+1),
			Prompt:  fmt.Sprintf("question %d", i+1),
			Options: []string{"a", "b", "c", "d"},
			Answer:  bank.SingleAnswer(0),
		})
	}
	return bank.Exam{
		ID:                    "pool-exam",
		Title:                 "Pool Exam",
		TimeLimit:             30,
		PassingScore:          70,
		RealExamQuestionCount: realCount,
		Questions:             questions,
	}
}

func TestBuildQuestionsRepeatsPool(t *testing.T) {
	exam := poolExam(3, 8)
	got := buildQuestions(exam, ModeExam)

	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	for i, sq := range got {
		src := exam.Questions[i%3]
		wantID := fmt.Sprintf("%s-repeat-%d", src.ID, i)
		if sq.ID != wantID {
			t.Errorf("question %d: id = %q, want %q", i, sq.ID, wantID)
		}
		if sq.Question.ID != src.ID {
			t.Errorf("question %d: source = %q, want %q", i, sq.Question.ID, src.ID)
		}
	}
}

func TestBuildQuestionsDeterministic(t *testing.T) {
	exam := poolExam(4, 11)
	first := buildQuestions(exam, ModeExam)
	second := buildQuestions(exam, ModeExam)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("question %d: %q vs %q, sequence not deterministic", i, first[i].ID, second[i].ID)
		}
	}
}

func TestBuildQuestionsPassthrough(t *testing.T) {
	cases := []struct {
		name string
		exam bank.Exam
		mode Mode
	}{
		{"practice ignores real count", poolExam(3, 8), ModePractice},
		{"no real count", poolExam(3, 0), ModeExam},
		{"real count equals pool", poolExam(3, 3), ModeExam},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := buildQuestions(tc.exam, tc.mode)
			if len(got) != len(tc.exam.Questions) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.exam.Questions))
			}
			for i, sq := range got {
				if sq.ID != tc.exam.Questions[i].ID {
					t.Errorf("question %d: id = %q, want %q", i, sq.ID, tc.exam.Questions[i].ID)
				}
			}
		})
	}
}
