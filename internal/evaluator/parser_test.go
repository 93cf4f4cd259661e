package evaluator

import (
	"testing"
)

func TestParseEvaluation_ValidJSON(t *testing.T) {
	input := `{"score": 4, "explanation": "Clear milestones and evidence of execution."}`

	eval, err := ParseEvaluation(input)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if eval.Score != 4 {
		t.Errorf("score = %d, want 4", eval.Score)
	}
	if eval.Explanation == "" {
		t.Error("explanation is empty")
	}
}

func TestParseEvaluation_CodeFences(t *testing.T) {
	inputs := []string{
		"```json\n{\"score\": 3, \"explanation\": \"Decent clarity.\"}\n```",
		"```\n{\"score\": 3, \"explanation\": \"Decent clarity.\"}\n```",
		"  {\"score\": 3, \"explanation\": \"Decent clarity.\"}  ",
	}
	for _, input := range inputs {
		eval, err := ParseEvaluation(input)
		if err != nil {
			t.Errorf("input %q: unexpected error %v", input, err)
			continue
		}
		if eval.Score != 3 {
			t.Errorf("input %q: score = %d, want 3", input, eval.Score)
		}
	}
}

func TestParseEvaluation_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "the founder shows strong potential"},
		{"score too high", `{"score": 7, "explanation": "great"}`},
		{"score too low", `{"score": 0, "explanation": "poor"}`},
		{"missing explanation", `{"score": 3}`},
		{"empty", ""},
	}
	for _, tt := range tests {
		if _, err := ParseEvaluation(tt.input); err == nil {
			t.Errorf("%s: expected error, got none", tt.name)
		}
	}
}
