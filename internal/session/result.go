package session

import (
	"math"
	"time"
)

// DefaultPassingScore applies when an exam does not declare its own
// passing threshold.
const DefaultPassingScore = 70

// Result is the outcome of a finished session.
type Result struct {
	ExamID         string    `json:"examId"`
	Score          int       `json:"score"` // percent, 0-100
	TotalQuestions int       `json:"totalQuestions"`
	CorrectAnswers int       `json:"correctAnswers"`
	WrongAnswers   int       `json:"wrongAnswers"`
	TimeSpent      int       `json:"timeSpent"` // seconds; 0 in practice mode
	CompletedAt    time.Time `json:"completedAt"`
	Answers        []Answer  `json:"answers"`
}

// Passed reports whether the score meets the given threshold. A
// non-positive threshold falls back to DefaultPassingScore.
func (r Result) Passed(passingScore int) bool {
	if passingScore <= 0 {
		passingScore = DefaultPassingScore
	}
	return r.Score >= passingScore
}

func buildResult(examID string, questions []SessionQuestion, answers map[string]Answer, timeSpent int) Result {
	out := make([]Answer, 0, len(questions))
	correct := 0
	for _, q := range questions {
		a := answers[q.ID]
		out = append(out, a)
		if a.IsCorrect {
			correct++
		}
	}

	score := 0
	if len(questions) > 0 {
		score = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	}

	return Result{
		ExamID:         examID,
		Score:          score,
		TotalQuestions: len(questions),
		CorrectAnswers: correct,
		WrongAnswers:   len(questions) - correct,
		TimeSpent:      timeSpent,
		CompletedAt:    time.Now().UTC(),
		Answers:        out,
	}
}
