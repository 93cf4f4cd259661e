package scoring

import (
	"testing"

	"github.com/gutcheck/backend/internal/models"
)

func TestValidateCatalog(t *testing.T) {
	if err := ValidateCatalog(); err != nil {
		t.Fatalf("catalog failed validation: %v", err)
	}
}

func TestCatalogShape(t *testing.T) {
	if len(Catalog) != 25 {
		t.Fatalf("catalog has %d questions, want 25", len(Catalog))
	}

	for _, c := range models.CategoryOrder {
		if got := len(QuestionsInCategory(c)); got != 5 {
			t.Errorf("category %s has %d questions, want 5", c, got)
		}
	}

	var total float64
	for _, w := range CategoryWeights {
		total += w
	}
	if total != 100 {
		t.Errorf("category weights sum to %v, want 100", total)
	}
}

func TestScoringMapsMatchOptions(t *testing.T) {
	for _, q := range Catalog {
		if q.Type != models.TypeMultipleChoice {
			continue
		}
		sm, ok := scoringMaps[q.ID]
		if !ok {
			t.Errorf("question %s has no scoring map", q.ID)
			continue
		}
		if len(sm) != len(q.Options) {
			t.Errorf("question %s: %d map entries for %d options", q.ID, len(sm), len(q.Options))
		}
		for i, v := range sm {
			if v < 0 || v > 5 {
				t.Errorf("question %s option %d scores %d, outside 0-5", q.ID, i, v)
			}
		}
	}
}

func TestOpenEndedQuestionsHaveRubrics(t *testing.T) {
	want := map[string]string{
		"q3":  "entrepreneurialJourney",
		"q8":  "businessChallenge",
		"q18": "setbacksResilience",
		"q23": "finalVision",
	}
	for id, rubric := range want {
		q := QuestionByID(id)
		if q == nil {
			t.Fatalf("question %s missing from catalog", id)
		}
		if q.Type != models.TypeOpenEnded {
			t.Errorf("question %s is %s, want openEnded", id, q.Type)
		}
		if q.RubricKey != rubric {
			t.Errorf("question %s rubric = %q, want %q", id, q.RubricKey, rubric)
		}
		if q.MinCharacters != 100 {
			t.Errorf("question %s min characters = %d, want 100", id, q.MinCharacters)
		}
	}
}

func TestQuestionByID(t *testing.T) {
	q := QuestionByID("q14")
	if q == nil {
		t.Fatal("q14 missing from catalog")
	}
	if q.Category != models.CategoryResources {
		t.Errorf("q14 category = %s, want resources", q.Category)
	}
	if QuestionByID("q99") != nil {
		t.Error("q99 should not resolve")
	}
}
