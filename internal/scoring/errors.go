package scoring

import (
	"fmt"
	"strings"

	"github.com/gutcheck/backend/internal/models"
)

// UnknownOptionError reports a response that cannot be resolved against the
// catalog: the question ID does not exist, or the selected label is not one
// of the question's answer options. Never converted to a zero score.
type UnknownOptionError struct {
	QuestionID string
	Option     string
}

func (e *UnknownOptionError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("question %s: no such question in catalog", e.QuestionID)
	}
	return fmt.Sprintf("question %s: option %q does not match any answer option", e.QuestionID, e.Option)
}

// IncompleteCategoryError reports a category with fewer responses than
// questions at scoring time. The caller must re-prompt for the missing answers.
type IncompleteCategoryError struct {
	Category models.Category
	Missing  []string
}

func (e *IncompleteCategoryError) Error() string {
	return fmt.Sprintf("category %s: missing responses for %s", e.Category, strings.Join(e.Missing, ", "))
}

// InvalidOpenEndedResponseError reports free text that failed the local
// pre-filter (too short, nonsense, too few words). Raised before any
// evaluator call so the user gets fast, deterministic feedback.
type InvalidOpenEndedResponseError struct {
	QuestionID string
	Reason     string
}

func (e *InvalidOpenEndedResponseError) Error() string {
	return fmt.Sprintf("question %s: %s", e.QuestionID, e.Reason)
}

// ScoringUnavailableError reports a failed or timed-out evaluator call.
// Transient: the caller may retry the whole submission. Never substituted
// with a default score.
type ScoringUnavailableError struct {
	QuestionID string
	Err        error
}

func (e *ScoringUnavailableError) Error() string {
	return fmt.Sprintf("question %s: open-ended scoring unavailable: %v", e.QuestionID, e.Err)
}

func (e *ScoringUnavailableError) Unwrap() error { return e.Err }

// InvariantViolationError reports a computed score outside its mathematically
// guaranteed bound. Indicates a bug in the weight or scoring tables; fatal,
// never swallowed.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return "scoring invariant violated: " + e.Detail
}
