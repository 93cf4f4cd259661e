package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gutcheck/backend/internal/models"
)

// ScoreMultipleChoice resolves a selected option label to its raw 0-5 score.
// Matching is exact and case-sensitive; anything else is an UnknownOptionError.
func ScoreMultipleChoice(q *models.Question, option string) (int, error) {
	sm := scoringMaps[q.ID]
	for i, o := range q.Options {
		if o == option {
			return sm[i], nil
		}
	}
	return 0, &UnknownOptionError{QuestionID: q.ID, Option: option}
}

// ScoreMultiSelect scores a multi-select answer by coverage: the fraction of
// catalog options selected, scaled to 0-5 and rounded half up. Duplicate
// selections count once; an unknown label is an error, not a skip.
func ScoreMultiSelect(q *models.Question, selected []string) (int, error) {
	valid := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		valid[o] = true
	}
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		if !valid[s] {
			return 0, &UnknownOptionError{QuestionID: q.ID, Option: s}
		}
		chosen[s] = true
	}
	return roundHalfUp(float64(len(chosen)) / float64(len(q.Options)) * 5), nil
}

// ScoreLikert scores a 0-5 agreement scale value. Out-of-range values are
// clamped. Reverse-scored questions invert agreement: a clamped 1-5 value v
// becomes 6-v, so strong agreement with a negative statement scores low.
func ScoreLikert(q *models.Question, scale int) int {
	if reverseScored[q.ID] {
		v := scale
		if v < 1 {
			v = 1
		} else if v > 5 {
			v = 5
		}
		return 6 - v
	}
	if scale < 0 {
		return 0
	}
	if scale > 5 {
		return 5
	}
	return scale
}

// ValidateOpenEnded runs the local pre-filter on a free-text answer. It
// rejects obviously unusable text before any evaluator call is made, so the
// user gets deterministic feedback without burning an API request.
func ValidateOpenEnded(q *models.Question, text string) error {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < q.MinCharacters {
		return &InvalidOpenEndedResponseError{
			QuestionID: q.ID,
			Reason:     "response is too short; please elaborate on your answer",
		}
	}
	if isRepeatedRune(trimmed) {
		return &InvalidOpenEndedResponseError{
			QuestionID: q.ID,
			Reason:     "response appears to be filler text rather than an answer",
		}
	}
	if isDigitsAndSpaces(trimmed) || isSymbolsOnly(trimmed) {
		return &InvalidOpenEndedResponseError{
			QuestionID: q.ID,
			Reason:     "response does not contain readable text",
		}
	}
	if len(strings.Fields(trimmed)) < 15 {
		return &InvalidOpenEndedResponseError{
			QuestionID: q.ID,
			Reason:     "response needs more detail; please answer in full sentences",
		}
	}
	return nil
}

func isRepeatedRune(s string) bool {
	var first rune
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if first == 0 {
			first = r
			continue
		}
		if r != first {
			return false
		}
	}
	return first != 0
}

func isDigitsAndSpaces(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isSymbolsOnly(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
