package bank

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswerKeyUnmarshal_Single(t *testing.T) {
	var k AnswerKey
	if err := json.Unmarshal([]byte(`2`), &k); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if k.IsMulti() {
		t.Error("expected single-choice key")
	}
	if k.Index() != 2 {
		t.Errorf("Index() = %d, want 2", k.Index())
	}
	if k.Count() != 1 {
		t.Errorf("Count() = %d, want 1", k.Count())
	}
}

func TestAnswerKeyUnmarshal_Multi(t *testing.T) {
	var k AnswerKey
	if err := json.Unmarshal([]byte(`[2, 0, 2]`), &k); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !k.IsMulti() {
		t.Fatal("expected multi-select key")
	}
	// Deduplicated and sorted.
	if got, want := k.Indices(), []int{0, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Indices() = %v, want %v", got, want)
	}
	if k.Count() != 2 {
		t.Errorf("Count() = %d, want 2", k.Count())
	}
}

func TestAnswerKeyUnmarshal_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"string", `"A"`},
		{"empty array", `[]`},
		{"mixed array", `[0, "B"]`},
		{"object", `{"index": 0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k AnswerKey
			if err := json.Unmarshal([]byte(tt.data), &k); err == nil {
				t.Errorf("expected error for %s", tt.data)
			}
		})
	}
}

func TestAnswerKeyMarshal_Roundtrip(t *testing.T) {
	tests := []struct {
		key  AnswerKey
		want string
	}{
		{SingleAnswer(3), `3`},
		{MultiAnswer(2, 0), `[0,2]`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.key)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != tt.want {
			t.Errorf("marshal = %s, want %s", data, tt.want)
		}
	}
}

func TestAnswerKeyContains(t *testing.T) {
	single := SingleAnswer(1)
	if !single.Contains(1) || single.Contains(0) {
		t.Error("single Contains mismatch")
	}

	multi := MultiAnswer(0, 2)
	if !multi.Contains(0) || !multi.Contains(2) || multi.Contains(1) {
		t.Error("multi Contains mismatch")
	}
}

func TestAnswerKeyIndices_Copy(t *testing.T) {
	k := MultiAnswer(0, 2)
	got := k.Indices()
	got[0] = 99
	if k.Indices()[0] != 0 {
		t.Error("Indices() must return a copy")
	}
}
