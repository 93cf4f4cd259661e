package evaluator

import (
	"context"
	"testing"

	"github.com/gutcheck/backend/internal/scoring"
)

func scoringRequest() scoring.EvalRequest {
	return scoring.EvalRequest{
		QuestionID:   "q3",
		QuestionText: "Tell me about your entrepreneurial journey so far.",
		ResponseText: "I started a storefront service for local shops and signed three clients in two months.",
		RubricKey:    "entrepreneurialJourney",
	}
}

func TestNewEvaluatorMockSelection(t *testing.T) {
	t.Setenv("MOCK_EVALUATOR", "true")
	t.Setenv("USE_CLI_EVALUATOR", "")

	eval := NewEvaluator()
	if eval.ModelName() != "mock" {
		t.Errorf("model name = %q, want mock", eval.ModelName())
	}
}

func TestMockClientScoresInRange(t *testing.T) {
	eval := &Evaluator{llm: NewMockClient(), model: "mock"}

	res, err := eval.ScoreOpenEnded(context.Background(), scoringRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score < 1 || res.Score > 5 {
		t.Errorf("score %d outside 1-5", res.Score)
	}
	if res.Explanation == "" {
		t.Error("explanation is empty")
	}
}
