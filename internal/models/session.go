package models

import (
	"encoding/json"
	"time"
)

// AssessmentSession is a completed submission with its locked scores.
// Sessions are written once at submission time and never rescored.
type AssessmentSession struct {
	SessionID string `json:"session_id"`
	UserID    *int64 `json:"user_id,omitempty"`
	// Responses is the submitted answer document as stored. The typed union
	// only exists during scoring; persisted payloads stay raw.
	Responses    json.RawMessage  `json:"responses,omitempty"`
	Scores       AssessmentScores `json:"scores"`
	StarRating   int              `json:"star_rating"`
	TierName     string           `json:"tier_name"`
	ConsentForML bool             `json:"consent_for_ml"`
	OutcomeTag   string           `json:"outcome_tag,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	CompletedAt  time.Time        `json:"completed_at"`
}

// ResponseInput is a single answer on the wire. The response payload is kept
// raw until the question's catalog type tells us which shape to decode.
type ResponseInput struct {
	QuestionID string          `json:"question_id"`
	Category   Category        `json:"category"`
	Response   json.RawMessage `json:"response"`
	Timestamp  *time.Time      `json:"timestamp,omitempty"`
}

type SubmitAssessmentRequest struct {
	SessionID    string          `json:"session_id,omitempty"`
	ConsentForML bool            `json:"consent_for_ml"`
	Responses    []ResponseInput `json:"responses"`
}

// AssessmentResult is the response to a scored submission.
type AssessmentResult struct {
	SessionID  string           `json:"session_id"`
	Scores     AssessmentScores `json:"scores"`
	StarRating int              `json:"star_rating"`
	TierName   string           `json:"tier_name"`
}

type PreviewRequest struct {
	Responses []ResponseInput `json:"responses"`
}

// PreviewResult is a non-persisted partial score for an in-progress
// assessment. Unanswered questions contribute nothing.
type PreviewResult struct {
	Scores     AssessmentScores `json:"scores"`
	StarRating int              `json:"star_rating"`
	TierName   string           `json:"tier_name"`
	Answered   int              `json:"answered"`
	Total      int              `json:"total"`
}

// CatalogResponse lists the questions and weight table for clients.
// Per-question scoring maps are intentionally not part of this payload.
type CatalogResponse struct {
	Questions       []Question           `json:"questions"`
	CategoryWeights map[Category]float64 `json:"category_weights"`
	StarTiers       []StarTier           `json:"star_tiers"`
	ScoringVersion  string               `json:"scoring_version"`
}

// PilotMetrics aggregates completed sessions for the admin dashboard.
type PilotMetrics struct {
	TotalAssessments     int            `json:"total_assessments"`
	CompletedAssessments int            `json:"completed_assessments"`
	CompletionRate       float64        `json:"completion_rate"`
	AverageScore         float64        `json:"average_score"`
	ScoreRanges          map[string]int `json:"score_ranges"`
	StarRatings          map[string]int `json:"star_rating_distribution"`
	Outcomes             map[string]int `json:"outcome_distribution"`
}
