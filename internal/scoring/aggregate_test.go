package scoring

import (
	"errors"
	"testing"

	"github.com/gutcheck/backend/internal/models"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2.4, 2},
		{2.5, 3}, // ties round up
		{2.6, 3},
		{12.5, 13},
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{19.999, 20},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAggregateCategory(t *testing.T) {
	// personalBackground: 5 questions at weight 4. Raw 5s give
	// 5/5 * 4 = 4 per question → 20, the category maximum.
	raws := map[string]int{"q1": 5, "q2": 5, "q3": 5, "q4": 5, "q5": 5}
	cs, err := AggregateCategory(models.CategoryPersonalBackground, raws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs.Normalized != 20 {
		t.Errorf("all-5s personalBackground = %d, want 20", cs.Normalized)
	}
	if cs.RawAverage != 5 {
		t.Errorf("raw average = %v, want 5", cs.RawAverage)
	}

	// Mixed raws: 3+4+5+3+4 = 19, contribution sum 19*0.8 = 15.2 → 15.
	raws = map[string]int{"q1": 3, "q2": 4, "q3": 5, "q4": 3, "q5": 4}
	cs, err = AggregateCategory(models.CategoryPersonalBackground, raws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs.Normalized != 15 {
		t.Errorf("mixed personalBackground = %d, want 15", cs.Normalized)
	}

	// entrepreneurialSkills carries weight 25, so each raw point is worth
	// exactly 1: 5+4+3+2+1 = 15.
	raws = map[string]int{"q6": 5, "q7": 4, "q8": 3, "q9": 2, "q10": 1}
	cs, err = AggregateCategory(models.CategoryEntrepreneurialSkills, raws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs.Normalized != 15 {
		t.Errorf("entrepreneurialSkills = %d, want 15", cs.Normalized)
	}
}

func TestAggregateCategoryIncomplete(t *testing.T) {
	raws := map[string]int{"q1": 5, "q2": 5, "q4": 5}
	_, err := AggregateCategory(models.CategoryPersonalBackground, raws)

	var inc *IncompleteCategoryError
	if !errors.As(err, &inc) {
		t.Fatalf("got %v, want IncompleteCategoryError", err)
	}
	if inc.Category != models.CategoryPersonalBackground {
		t.Errorf("error carries category %s", inc.Category)
	}
	if len(inc.Missing) != 2 || inc.Missing[0] != "q3" || inc.Missing[1] != "q5" {
		t.Errorf("missing = %v, want [q3 q5]", inc.Missing)
	}
}

func TestAggregatePartial(t *testing.T) {
	// Only q14 answered with raw 5: one question at weight 4 contributes
	// 5/5 * 4 = 4. Unanswered questions contribute nothing.
	raws := map[string]int{"q14": 5}
	cs, err := aggregatePartial(models.CategoryResources, raws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs.Normalized != 4 {
		t.Errorf("partial resources = %d, want 4", cs.Normalized)
	}

	// Empty category scores zero rather than erroring.
	cs, err = aggregatePartial(models.CategoryGrowthVision, map[string]int{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs.Normalized != 0 {
		t.Errorf("empty growthVision = %d, want 0", cs.Normalized)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		overall int
		stars   int
		name    string
	}{
		{100, 5, "Visionary Leader"},
		{90, 5, "Visionary Leader"},
		{89, 4, "Strong Execution"},
		{80, 4, "Strong Execution"},
		{79, 3, "Emerging Traction"},
		{65, 3, "Emerging Traction"},
		{64, 2, "Developing Potential"},
		{50, 2, "Developing Potential"},
		{49, 1, "Early Spark"},
		{35, 1, "Early Spark"},
		// Below the nominal bottom band still floors to one star.
		{34, 1, "Early Spark"},
		{0, 1, "Early Spark"},
	}
	for _, tt := range tests {
		tier := TierFor(tt.overall)
		if tier.Stars != tt.stars || tier.Name != tt.name {
			t.Errorf("TierFor(%d) = %d star %q, want %d star %q",
				tt.overall, tier.Stars, tier.Name, tt.stars, tt.name)
		}
	}
}
