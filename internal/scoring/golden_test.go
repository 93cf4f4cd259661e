package scoring

import (
	"context"
	"testing"

	"github.com/gutcheck/backend/internal/models"
)

// goldenFixture is a recorded scoring run from the pilot. These outputs are
// locked: a change here means the scoring version must be bumped, because
// previously issued results would no longer be reproducible.
type goldenFixture struct {
	name      string
	answers   map[string]string // questionID → selected option
	want      map[models.Category]int
	wantTotal int
}

var goldenFixtures = []goldenFixture{
	{
		name: "high-engagement founder",
		answers: map[string]string{
			"q7":  "Daily",
			"q14": "Yes",
			"q25": "Yes",
		},
		want: map[models.Category]int{
			models.CategoryPersonalBackground:    0,
			models.CategoryEntrepreneurialSkills: 5,
			models.CategoryResources:             4,
			models.CategoryBehavioralMetrics:     0,
			models.CategoryGrowthVision:          4,
		},
		wantTotal: 13,
	},
	{
		name: "moderate engagement",
		answers: map[string]string{
			"q7":  "Weekly",
			"q14": "No",
			"q25": "No",
		},
		want: map[models.Category]int{
			models.CategoryPersonalBackground:    0,
			models.CategoryEntrepreneurialSkills: 4,
			models.CategoryResources:             2,
			models.CategoryBehavioralMetrics:     0,
			models.CategoryGrowthVision:          2,
		},
		wantTotal: 8,
	},
	{
		name: "cautious first-timer",
		answers: map[string]string{
			"q7":  "Monthly",
			"q14": "No",
			"q20": "No",
			"q24": "No",
			"q25": "Not sure",
		},
		want: map[models.Category]int{
			models.CategoryPersonalBackground:    0,
			models.CategoryEntrepreneurialSkills: 3,
			models.CategoryResources:             2,
			models.CategoryBehavioralMetrics:     2,
			models.CategoryGrowthVision:          4,
		},
		wantTotal: 11,
	},
	{
		name: "undecided funding path",
		answers: map[string]string{
			"q5":  "Other",
			"q14": "No",
			"q20": "No",
			"q22": "Unsure",
			"q24": "Not sure",
			"q25": "Not sure",
		},
		want: map[models.Category]int{
			models.CategoryPersonalBackground:    2,
			models.CategoryEntrepreneurialSkills: 0,
			models.CategoryResources:             2,
			models.CategoryBehavioralMetrics:     2,
			models.CategoryGrowthVision:          5,
		},
		wantTotal: 11,
	},
}

func TestGoldenScores(t *testing.T) {
	engine := NewEngine(&stubEvaluator{score: 3}, 0)

	for _, fx := range goldenFixtures {
		t.Run(fx.name, func(t *testing.T) {
			var responses []models.AssessmentResponse
			for _, q := range Catalog {
				option, ok := fx.answers[q.ID]
				if !ok {
					continue
				}
				responses = append(responses, responseFor(t, q.ID, models.OptionResponse(option)))
			}

			res, err := engine.ScorePartial(context.Background(), responses)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for c, want := range fx.want {
				if got := res.Scores.Get(c); got != want {
					t.Errorf("%s = %d, want %d", c, got, want)
				}
			}
			if res.Scores.OverallScore != fx.wantTotal {
				t.Errorf("overall = %d, want %d", res.Scores.OverallScore, fx.wantTotal)
			}
			if res.Scores.ScoringVersion != Version {
				t.Errorf("scoring version = %q, want %q", res.Scores.ScoringVersion, Version)
			}
			if res.StarRating < 1 || res.StarRating > 5 {
				t.Errorf("star rating %d outside 1-5", res.StarRating)
			}
		})
	}
}

func TestFingerprintIsStable(t *testing.T) {
	first := Fingerprint()
	second := Fingerprint()
	if first != second {
		t.Errorf("fingerprint not deterministic: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("fingerprint length %d, want 64 hex characters", len(first))
	}
}
