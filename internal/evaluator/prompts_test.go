package evaluator

import (
	"strings"
	"testing"
)

func TestBuildScoringPrompt(t *testing.T) {
	prompt := BuildScoringPrompt("businessChallenge", "Describe a major challenge.", "We lost our biggest client and rebuilt the pipeline.")

	if !strings.Contains(prompt, "business challenges") {
		t.Error("prompt does not use the businessChallenge rubric")
	}
	if !strings.Contains(prompt, "Describe a major challenge.") {
		t.Error("prompt missing question text")
	}
	if !strings.Contains(prompt, "We lost our biggest client") {
		t.Error("prompt missing founder response")
	}
	if !strings.Contains(prompt, "'score' (number 1-5)") {
		t.Error("prompt missing output format instruction")
	}
}

func TestBuildScoringPromptUnknownRubric(t *testing.T) {
	// Unknown keys fall back to the journey rubric rather than erroring.
	prompt := BuildScoringPrompt("nonexistent", "Question?", "Answer text.")
	if !strings.Contains(prompt, "entrepreneurial journey") {
		t.Error("unknown rubric key did not fall back to the journey rubric")
	}
}

func TestRubricsCoverCatalogKeys(t *testing.T) {
	for _, key := range []string{"entrepreneurialJourney", "businessChallenge", "setbacksResilience", "finalVision"} {
		if _, ok := rubrics[key]; !ok {
			t.Errorf("no rubric for %s", key)
		}
	}
}
