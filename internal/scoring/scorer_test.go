package scoring

import (
	"errors"
	"strings"
	"testing"
)

func TestScoreMultipleChoice(t *testing.T) {
	tests := []struct {
		questionID string
		option     string
		want       int
	}{
		{"q1", "Idea/Concept stage", 3},
		{"q1", "Established and generating consistent revenue", 5},
		{"q7", "Daily", 5},
		{"q7", "Rarely or never", 2},
		{"q14", "Yes", 5},
		{"q14", "No", 3},
		{"q22", "Seeking investments (e.g., angel, VC)", 5},
		{"q22", "Unsure", 2},
		{"q25", "Not sure", 2},
	}

	for _, tt := range tests {
		q := QuestionByID(tt.questionID)
		got, err := ScoreMultipleChoice(q, tt.option)
		if err != nil {
			t.Errorf("%s %q: unexpected error %v", tt.questionID, tt.option, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s %q = %d, want %d", tt.questionID, tt.option, got, tt.want)
		}
	}
}

func TestScoreMultipleChoiceUnknownOption(t *testing.T) {
	q := QuestionByID("q14")

	// Matching is case-sensitive and exact.
	for _, bad := range []string{"yes", "YES", " Yes", "Maybe"} {
		_, err := ScoreMultipleChoice(q, bad)
		var uo *UnknownOptionError
		if !errors.As(err, &uo) {
			t.Errorf("option %q: got %v, want UnknownOptionError", bad, err)
			continue
		}
		if uo.QuestionID != "q14" || uo.Option != bad {
			t.Errorf("option %q: error carries %s/%q", bad, uo.QuestionID, uo.Option)
		}
	}
}

func TestScoreMultiSelect(t *testing.T) {
	q := QuestionByID("q9")

	tests := []struct {
		name     string
		selected []string
		want     int
	}{
		// 5 options: count/5*5 = count, rounded half up.
		{"none", nil, 0},
		{"one", []string{"Business registration"}, 1},
		{"three", []string{"Business registration", "First paying customer", "EIN or tax ID obtained"}, 3},
		{"all", []string{"Business registration", "EIN or tax ID obtained", "Business bank account opened", "First paying customer", "Applied for a loan, grant, or accelerator"}, 5},
		// Duplicates count once.
		{"duplicates", []string{"Business registration", "Business registration"}, 1},
	}

	for _, tt := range tests {
		got, err := ScoreMultiSelect(q, tt.selected)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestScoreMultiSelectUnknownLabel(t *testing.T) {
	q := QuestionByID("q9")
	_, err := ScoreMultiSelect(q, []string{"Business registration", "Built a website"})
	var uo *UnknownOptionError
	if !errors.As(err, &uo) {
		t.Fatalf("got %v, want UnknownOptionError", err)
	}
	if uo.Option != "Built a website" {
		t.Errorf("error carries option %q", uo.Option)
	}
}

func TestScoreLikert(t *testing.T) {
	q10 := QuestionByID("q10")

	tests := []struct {
		scale int
		want  int
	}{
		{0, 0},
		{3, 3},
		{5, 5},
		{-2, 0}, // clamped low
		{9, 5},  // clamped high
	}
	for _, tt := range tests {
		if got := ScoreLikert(q10, tt.scale); got != tt.want {
			t.Errorf("q10 scale %d = %d, want %d", tt.scale, got, tt.want)
		}
	}
}

func TestScoreLikertReverse(t *testing.T) {
	// q19 asks about fear of failure: agreement is a weakness, so the
	// clamped 1-5 value v scores 6-v.
	q19 := QuestionByID("q19")

	tests := []struct {
		scale int
		want  int
	}{
		{1, 5},
		{3, 3},
		{5, 1},
		{0, 5},  // clamps to 1 before reversing
		{12, 1}, // clamps to 5 before reversing
	}
	for _, tt := range tests {
		if got := ScoreLikert(q19, tt.scale); got != tt.want {
			t.Errorf("q19 scale %d = %d, want %d", tt.scale, got, tt.want)
		}
	}
}

func TestValidateOpenEnded(t *testing.T) {
	q := QuestionByID("q3")

	longEnough := strings.Repeat("I started my business after seeing a gap in the local market. ", 4)
	if err := ValidateOpenEnded(q, longEnough); err != nil {
		t.Errorf("genuine answer rejected: %v", err)
	}

	rejects := []struct {
		name string
		text string
	}{
		{"too short", "it was fine I guess"},
		{"repeated rune", strings.Repeat("a", 150)},
		{"repeated rune with spaces", strings.Repeat("a ", 80)},
		{"digits only", strings.Repeat("12345 ", 25)},
		{"symbols only", strings.Repeat("!?.,;- ", 25)},
		{"few long words", strings.Repeat("entrepreneurship", 10)},
		{"whitespace padding", "   short answer   "},
	}
	for _, tt := range rejects {
		err := ValidateOpenEnded(q, tt.text)
		var inv *InvalidOpenEndedResponseError
		if !errors.As(err, &inv) {
			t.Errorf("%s: got %v, want InvalidOpenEndedResponseError", tt.name, err)
			continue
		}
		if inv.QuestionID != "q3" {
			t.Errorf("%s: error carries question %s", tt.name, inv.QuestionID)
		}
	}
}
