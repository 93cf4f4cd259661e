package scoring

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gutcheck/backend/internal/models"
)

// EvalRequest carries one open-ended answer to the evaluator.
type EvalRequest struct {
	QuestionID   string
	QuestionText string
	ResponseText string
	RubricKey    string
}

// EvalResult is the evaluator's verdict on an open-ended answer.
type EvalResult struct {
	Score       int
	Explanation string
}

// OpenEndedEvaluator scores free-text answers on the 1-5 scale. Implemented
// by the AI evaluator in production and by stubs in tests.
type OpenEndedEvaluator interface {
	ScoreOpenEnded(ctx context.Context, req EvalRequest) (*EvalResult, error)
}

// Engine scores assessments against the locked catalog. Everything except
// open-ended answers is computed locally and deterministically; open-ended
// answers go through the injected evaluator with a per-call timeout.
type Engine struct {
	evaluator OpenEndedEvaluator
	timeout   time.Duration
}

func NewEngine(evaluator OpenEndedEvaluator, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Engine{evaluator: evaluator, timeout: timeout}
}

// Result is a fully scored submission.
type Result struct {
	Scores     models.AssessmentScores
	StarRating int
	TierName   string
}

// Score scores a complete submission. All 25 questions must be answered
// exactly once; any invalid, missing, or unscorable answer fails the whole
// submission rather than defaulting.
func (e *Engine) Score(ctx context.Context, responses []models.AssessmentResponse) (*Result, error) {
	raws, err := e.rawScores(ctx, responses)
	if err != nil {
		return nil, err
	}

	var scores models.AssessmentScores
	for _, c := range models.CategoryOrder {
		cs, err := AggregateCategory(c, raws)
		if err != nil {
			return nil, err
		}
		scores.SetCategory(c, cs.Normalized)
	}

	overall, err := overallFrom(&scores)
	if err != nil {
		return nil, err
	}
	scores.OverallScore = overall
	scores.ScoringVersion = Version

	tier := TierFor(overall)
	return &Result{Scores: scores, StarRating: tier.Stars, TierName: tier.Name}, nil
}

// ScorePartial scores whatever subset of questions has been answered, for
// in-progress previews. Answered questions are validated as strictly as in
// Score; unanswered ones simply contribute nothing.
func (e *Engine) ScorePartial(ctx context.Context, responses []models.AssessmentResponse) (*Result, error) {
	raws, err := e.rawScores(ctx, responses)
	if err != nil {
		return nil, err
	}

	var scores models.AssessmentScores
	for _, c := range models.CategoryOrder {
		cs, err := aggregatePartial(c, raws)
		if err != nil {
			return nil, err
		}
		scores.SetCategory(c, cs.Normalized)
	}

	overall, err := overallFrom(&scores)
	if err != nil {
		return nil, err
	}
	scores.OverallScore = overall
	scores.ScoringVersion = Version

	tier := TierFor(overall)
	return &Result{Scores: scores, StarRating: tier.Stars, TierName: tier.Name}, nil
}

// rawScores validates every response against the catalog and produces the
// per-question raw 0-5 scores. Open-ended answers are pre-filtered first and
// then evaluated concurrently; the first failure cancels the rest.
func (e *Engine) rawScores(ctx context.Context, responses []models.AssessmentResponse) (map[string]int, error) {
	raws := make(map[string]int, len(responses))
	var openEnded []models.AssessmentResponse

	for _, r := range responses {
		q := QuestionByID(r.QuestionID)
		if q == nil {
			return nil, &UnknownOptionError{QuestionID: r.QuestionID}
		}
		if _, dup := raws[q.ID]; dup {
			return nil, fmt.Errorf("question %s: answered more than once", q.ID)
		}
		for _, o := range openEnded {
			if o.QuestionID == q.ID {
				return nil, fmt.Errorf("question %s: answered more than once", q.ID)
			}
		}
		if r.Category != "" && r.Category != q.Category {
			return nil, fmt.Errorf("question %s: response claims category %s, catalog says %s", q.ID, r.Category, q.Category)
		}
		if r.Value.Kind() != q.Type {
			return nil, fmt.Errorf("question %s: got %s response for a %s question", q.ID, r.Value.Kind(), q.Type)
		}

		switch q.Type {
		case models.TypeMultipleChoice:
			raw, err := ScoreMultipleChoice(q, r.Value.Option())
			if err != nil {
				return nil, err
			}
			raws[q.ID] = raw

		case models.TypeMultiSelect:
			raw, err := ScoreMultiSelect(q, r.Value.Selected())
			if err != nil {
				return nil, err
			}
			raws[q.ID] = raw

		case models.TypeLikert:
			raws[q.ID] = ScoreLikert(q, r.Value.Scale())

		case models.TypeOpenEnded:
			if err := ValidateOpenEnded(q, r.Value.Text()); err != nil {
				return nil, err
			}
			openEnded = append(openEnded, r)
		}
	}

	if len(openEnded) > 0 {
		if err := e.evaluateOpenEnded(ctx, openEnded, raws); err != nil {
			return nil, err
		}
	}
	return raws, nil
}

func (e *Engine) evaluateOpenEnded(ctx context.Context, responses []models.AssessmentResponse, raws map[string]int) error {
	g, gctx := errgroup.WithContext(ctx)
	results := make([]int, len(responses))

	for i, r := range responses {
		i, r := i, r
		q := QuestionByID(r.QuestionID)
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, e.timeout)
			defer cancel()

			res, err := e.evaluator.ScoreOpenEnded(callCtx, EvalRequest{
				QuestionID:   q.ID,
				QuestionText: q.Text,
				ResponseText: r.Value.Text(),
				RubricKey:    q.RubricKey,
			})
			if err != nil {
				return &ScoringUnavailableError{QuestionID: q.ID, Err: err}
			}
			if res.Score < 1 || res.Score > 5 {
				return &ScoringUnavailableError{
					QuestionID: q.ID,
					Err:        fmt.Errorf("evaluator returned score %d, outside 1-5", res.Score),
				}
			}
			results[i] = res.Score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, r := range responses {
		raws[r.QuestionID] = results[i]
	}
	return nil
}
