package bank

import (
	"errors"
	"fmt"
)

// ErrExamNotFound is returned by Catalog.Get for an unknown exam id.
var ErrExamNotFound = errors.New("exam not found")

// Exam is one certification exam: metadata plus its ordered question pool.
// TimeLimit is in minutes; PassingScore is a percentage.
//
// RealExamQuestionCount, when non-zero, is the question count of the real
// certification exam. Exam-mode sessions repeat the authored pool to reach
// it, so a small pool can simulate a full-length exam.
type Exam struct {
	ID                    string     `json:"id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description,omitempty"`
	TimeLimit             int        `json:"timeLimit"`
	PassingScore          int        `json:"passingScore"`
	Category              string     `json:"category,omitempty"`
	SubCategory           string     `json:"subCategory,omitempty"`
	Icon                  string     `json:"icon,omitempty"`
	RealExamQuestionCount int        `json:"realExamQuestionCount,omitempty"`
	Questions             []Question `json:"questions"`
}

// Catalog is a read-only collection of exams with id lookup.
type Catalog struct {
	exams []Exam
	byID  map[string]int
}

// NewCatalog builds a catalog preserving exam order.
func NewCatalog(exams []Exam) *Catalog {
	byID := make(map[string]int, len(exams))
	for i, e := range exams {
		byID[e.ID] = i
	}
	return &Catalog{exams: exams, byID: byID}
}

// Get returns the exam with the given id, or ErrExamNotFound.
func (c *Catalog) Get(id string) (Exam, error) {
	i, ok := c.byID[id]
	if !ok {
		return Exam{}, fmt.Errorf("%w: %q", ErrExamNotFound, id)
	}
	return c.exams[i], nil
}

// Exams returns the exams in catalog order. The returned slice is a copy;
// the exams themselves share backing arrays and must be treated as
// read-only.
func (c *Catalog) Exams() []Exam {
	out := make([]Exam, len(c.exams))
	copy(out, c.exams)
	return out
}

// Len returns the number of exams in the catalog.
func (c *Catalog) Len() int {
	return len(c.exams)
}
