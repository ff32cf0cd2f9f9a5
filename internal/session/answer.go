package session

import (
	"encoding/json"
	"fmt"

	"github.com/grknsolak/it-certification-app/internal/bank"
)

// unansweredSentinel is the wire value recorded for questions the user
// never answered.
const unansweredSentinel = -1

type selectionKind int

const (
	selectionNone selectionKind = iota
	selectionSingle
	selectionMulti
)

// Selection is what the user has picked for one question: nothing, a
// single option index, or an ordered set of indices for multi-select
// questions. The zero value is no selection.
type Selection struct {
	kind    selectionKind
	single  int
	indices []int
}

// NoSelection reports an unanswered question.
func NoSelection() Selection { return Selection{} }

// SingleSelection picks one option index.
func SingleSelection(index int) Selection {
	return Selection{kind: selectionSingle, single: index}
}

// MultiSelection picks a set of option indices. Order is preserved as
// given, matching the order the user toggled them in.
func MultiSelection(indices ...int) Selection {
	out := make([]int, len(indices))
	copy(out, indices)
	return Selection{kind: selectionMulti, indices: out}
}

// IsNone reports whether nothing is selected.
func (s Selection) IsNone() bool { return s.kind == selectionNone }

// Single returns the selected index when exactly one scalar option is
// picked.
func (s Selection) Single() (int, bool) {
	if s.kind != selectionSingle {
		return 0, false
	}
	return s.single, true
}

// Indices returns the selected option indices. Single selections yield a
// one-element slice, empty selections nil. The returned slice is a copy.
func (s Selection) Indices() []int {
	switch s.kind {
	case selectionSingle:
		return []int{s.single}
	case selectionMulti:
		out := make([]int, len(s.indices))
		copy(out, s.indices)
		return out
	default:
		return nil
	}
}

// Len is the number of selected options.
func (s Selection) Len() int {
	switch s.kind {
	case selectionSingle:
		return 1
	case selectionMulti:
		return len(s.indices)
	default:
		return 0
	}
}

// Contains reports whether the given option index is selected.
func (s Selection) Contains(index int) bool {
	switch s.kind {
	case selectionSingle:
		return s.single == index
	case selectionMulti:
		for _, i := range s.indices {
			if i == index {
				return true
			}
		}
	}
	return false
}

// MarshalJSON encodes no selection as -1, a single pick as a bare number
// and a multi pick as an array.
func (s Selection) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case selectionSingle:
		return json.Marshal(s.single)
	case selectionMulti:
		return json.Marshal(s.indices)
	default:
		return json.Marshal(unansweredSentinel)
	}
}

// UnmarshalJSON accepts -1, a single option index, or an array of indices.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n == unansweredSentinel {
			*s = NoSelection()
		} else {
			*s = SingleSelection(n)
		}
		return nil
	}
	var indices []int
	if err := json.Unmarshal(data, &indices); err == nil {
		*s = MultiSelection(indices...)
		return nil
	}
	return fmt.Errorf("selection: cannot decode %s", data)
}

// Answer is one committed ledger entry.
type Answer struct {
	QuestionID string    `json:"questionId"`
	Selected   Selection `json:"selectedOption"`
	IsCorrect  bool      `json:"isCorrect"`

	// TimeSpent is reserved for per-question timing; always 0 today.
	TimeSpent int `json:"timeSpent"`
}

// grade checks a selection against the answer key. Multi-select questions
// require the exact index set, with no partial credit. Single questions
// require the one correct index.
func grade(key bank.AnswerKey, sel Selection) bool {
	if key.IsMulti() {
		if sel.Len() != key.Count() {
			return false
		}
		for _, want := range key.Indices() {
			if !sel.Contains(want) {
				return false
			}
		}
		return true
	}
	got, ok := sel.Single()
	return ok && got == key.Index()
}
