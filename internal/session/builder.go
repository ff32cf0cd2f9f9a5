package session

import (
	"fmt"

	"github.com/grknsolak/it-certification-app/internal/bank"
)

// SessionQuestion is a bank question wrapped with a session-scoped id.
// When exam mode repeats a small pool to reach the real exam's length,
// every occurrence gets its own id, so repeated occurrences are separate
// ledger keys.
type SessionQuestion struct {
	// ID is the session-scoped identifier. Equal to the bank question id
	// unless the sequence was synthesized by repetition.
	ID string

	Question bank.Question
}

// buildQuestions derives the ordered question sequence for a session.
//
// Practice mode presents the authored pool as-is. Exam mode does too,
// unless the exam declares a RealExamQuestionCount different from the pool
// size: then the pool is cycled deterministically (pool[i % poolSize]) to
// produce exactly that many questions, each id suffixed with its
// repetition index.
func buildQuestions(exam bank.Exam, mode Mode) []SessionQuestion {
	pool := exam.Questions

	if mode == ModeExam && exam.RealExamQuestionCount > 0 && exam.RealExamQuestionCount != len(pool) {
		target := exam.RealExamQuestionCount
		questions := make([]SessionQuestion, 0, target)
		for i := 0; i < target; i++ {
			q := pool[i%len(pool)]
			questions = append(questions, SessionQuestion{
				ID:       fmt.Sprintf("%s-repeat-%d", q.ID, i),
				Question: q,
			})
		}
		return questions
	}

	questions := make([]SessionQuestion, 0, len(pool))
	for _, q := range pool {
		questions = append(questions, SessionQuestion{ID: q.ID, Question: q})
	}
	return questions
}
