package bank

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Difficulty labels used by the catalog metadata. Never consulted by grading.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is a single catalog question. Immutable once loaded; sessions
// reference questions by value and never write back.
type Question struct {
	ID          string    `json:"id"`
	Prompt      string    `json:"question"`
	Options     []string  `json:"options"`
	Answer      AnswerKey `json:"correctAnswer"`
	Explanation string    `json:"explanation,omitempty"`
	Category    string    `json:"category,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty"`
}

// AnswerKey is the correct answer for a question: either a single option
// index or an unordered set of indices (multi-select). Callers branch on
// IsMulti; grading must never treat one variant as the other.
type AnswerKey struct {
	multi   bool
	index   int
	indices []int
}

// SingleAnswer returns a key for a single-choice question.
func SingleAnswer(index int) AnswerKey {
	return AnswerKey{index: index}
}

// MultiAnswer returns a key for a multi-select question. Indices are
// deduplicated and kept sorted so set comparisons are order-independent.
func MultiAnswer(indices ...int) AnswerKey {
	set := normalizeIndices(indices)
	return AnswerKey{multi: true, indices: set}
}

// IsMulti reports whether the key is the multi-select variant.
func (k AnswerKey) IsMulti() bool {
	return k.multi
}

// Index returns the correct option index for a single-choice key.
// Only meaningful when IsMulti is false.
func (k AnswerKey) Index() int {
	return k.index
}

// Indices returns a copy of the correct index set for a multi-select key,
// sorted ascending. Only meaningful when IsMulti is true.
func (k AnswerKey) Indices() []int {
	out := make([]int, len(k.indices))
	copy(out, k.indices)
	return out
}

// Count returns the number of selections a complete answer requires.
func (k AnswerKey) Count() int {
	if k.multi {
		return len(k.indices)
	}
	return 1
}

// Contains reports whether index is part of the correct answer.
func (k AnswerKey) Contains(index int) bool {
	if !k.multi {
		return k.index == index
	}
	for _, i := range k.indices {
		if i == index {
			return true
		}
	}
	return false
}

// MarshalJSON emits the catalog wire form: a bare number for single-choice,
// an array of numbers for multi-select.
func (k AnswerKey) MarshalJSON() ([]byte, error) {
	if k.multi {
		return json.Marshal(k.indices)
	}
	return json.Marshal(k.index)
}

// UnmarshalJSON accepts either a number or an array of numbers.
func (k *AnswerKey) UnmarshalJSON(data []byte) error {
	var single int
	if err := json.Unmarshal(data, &single); err == nil {
		*k = SingleAnswer(single)
		return nil
	}

	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return fmt.Errorf("correctAnswer must be an option index or an array of indices: %w", err)
	}
	if len(indices) == 0 {
		return fmt.Errorf("correctAnswer array must not be empty")
	}
	*k = MultiAnswer(indices...)
	return nil
}

func normalizeIndices(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	set := make([]int, 0, len(indices))
	for _, i := range indices {
		if !seen[i] {
			seen[i] = true
			set = append(set, i)
		}
	}
	sort.Ints(set)
	return set
}
