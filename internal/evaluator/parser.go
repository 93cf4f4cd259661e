package evaluator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Evaluation is the parsed verdict of one scoring call.
type Evaluation struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// ParseEvaluation extracts the score JSON from a model response, tolerating
// markdown code fences around the payload.
func ParseEvaluation(responseBody string) (*Evaluation, error) {
	cleaned := stripCodeFences(responseBody)

	var eval Evaluation
	if err := json.Unmarshal([]byte(cleaned), &eval); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if eval.Score < 1 || eval.Score > 5 {
		return nil, fmt.Errorf("score %d outside 1-5", eval.Score)
	}
	if eval.Explanation == "" {
		return nil, fmt.Errorf("evaluation missing explanation")
	}

	return &eval, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
