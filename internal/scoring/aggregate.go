package scoring

import (
	"fmt"
	"math"

	"github.com/gutcheck/backend/internal/models"
)

// roundHalfUp rounds to the nearest integer with ties going up, so a
// category landing exactly on .5 rounds to the higher score.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// contribution is the share of the overall score earned by one answered
// question: the raw 0-5 score scaled to the question's weight, which is the
// question's equal share of its category weight.
func contribution(raw int, weight float64) float64 {
	return float64(raw) / 5 * weight
}

// CategoryScore carries one category's result along with the intermediate
// values, for score breakdowns and debugging.
type CategoryScore struct {
	Category   models.Category `json:"category"`
	RawAverage float64         `json:"rawAverage"`
	Normalized int             `json:"normalized"`
}

// AggregateCategory computes a category's normalized score from the raw
// per-question scores. Every question in the category must be present;
// a partial category is an IncompleteCategoryError.
func AggregateCategory(c models.Category, raws map[string]int) (CategoryScore, error) {
	questions := QuestionsInCategory(c)

	var missing []string
	for _, q := range questions {
		if _, ok := raws[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return CategoryScore{}, &IncompleteCategoryError{Category: c, Missing: missing}
	}

	var sum float64
	var rawSum int
	for _, q := range questions {
		raw := raws[q.ID]
		rawSum += raw
		sum += contribution(raw, q.Weight)
	}
	score := roundHalfUp(sum)

	maxScore := int(CategoryWeights[c])
	if score < 0 || score > maxScore {
		return CategoryScore{}, &InvariantViolationError{
			Detail: fmt.Sprintf("category %s scored %d, outside 0-%d", c, score, maxScore),
		}
	}

	return CategoryScore{
		Category:   c,
		RawAverage: float64(rawSum) / float64(len(questions)),
		Normalized: score,
	}, nil
}

// aggregatePartial computes a category score from whatever raw scores are
// present. Unanswered questions contribute nothing. Used for previews of
// in-progress sessions, never for final submission.
func aggregatePartial(c models.Category, raws map[string]int) (CategoryScore, error) {
	var sum float64
	var rawSum, answered int
	for _, q := range QuestionsInCategory(c) {
		raw, ok := raws[q.ID]
		if !ok {
			continue
		}
		answered++
		rawSum += raw
		sum += contribution(raw, q.Weight)
	}
	score := roundHalfUp(sum)

	maxScore := int(CategoryWeights[c])
	if score < 0 || score > maxScore {
		return CategoryScore{}, &InvariantViolationError{
			Detail: fmt.Sprintf("category %s scored %d, outside 0-%d", c, score, maxScore),
		}
	}

	cs := CategoryScore{Category: c, Normalized: score}
	if answered > 0 {
		cs.RawAverage = float64(rawSum) / float64(answered)
	}
	return cs, nil
}

// StarTiers maps overall score bands to 1-5 stars. Lower bounds are
// inclusive; scores below the lowest band floor to one star.
var StarTiers = []models.StarTier{
	{Stars: 5, Name: "Visionary Leader", Min: 90, Max: 100},
	{Stars: 4, Name: "Strong Execution", Min: 80, Max: 89},
	{Stars: 3, Name: "Emerging Traction", Min: 65, Max: 79},
	{Stars: 2, Name: "Developing Potential", Min: 50, Max: 64},
	{Stars: 1, Name: "Early Spark", Min: 35, Max: 49},
}

// TierFor returns the star tier for an overall score.
func TierFor(overall int) models.StarTier {
	for _, t := range StarTiers {
		if overall >= t.Min {
			return t
		}
	}
	// Below every band floors to the bottom tier.
	return StarTiers[len(StarTiers)-1]
}

// overallFrom sums category scores into the 0-100 overall score.
func overallFrom(scores *models.AssessmentScores) (int, error) {
	var overall int
	for _, c := range models.CategoryOrder {
		overall += scores.Get(c)
	}
	if overall < 0 || overall > 100 {
		return 0, &InvariantViolationError{
			Detail: fmt.Sprintf("overall score %d outside 0-100", overall),
		}
	}
	return overall, nil
}
