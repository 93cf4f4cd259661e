package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gutcheck/backend/internal/models"
	"github.com/gutcheck/backend/internal/scoring"
)

// ValidOutcomeTags are the follow-up labels the pilot program records
// against completed sessions.
var ValidOutcomeTags = map[string]bool{
	"breakthrough": true,
	"growth":       true,
	"stagnation":   true,
}

// Service runs submissions through the scoring engine and persists the
// results.
type Service struct {
	engine *scoring.Engine
	store  *Store
}

func NewService(engine *scoring.Engine, store *Store) *Service {
	return &Service{engine: engine, store: store}
}

// Submit scores a complete assessment and persists the session. Any
// validation or scoring failure aborts before anything is written.
func (s *Service) Submit(ctx context.Context, req models.SubmitAssessmentRequest, userID *int64) (*models.AssessmentResult, error) {
	responses, err := decodeResponses(req.Responses)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Score(ctx, responses)
	if err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	} else if _, err := uuid.Parse(sessionID); err != nil {
		return nil, fmt.Errorf("invalid session_id: %w", err)
	}

	stored, err := json.Marshal(responses)
	if err != nil {
		return nil, fmt.Errorf("marshal responses: %w", err)
	}

	now := time.Now().UTC()
	session := &models.AssessmentSession{
		SessionID:    sessionID,
		UserID:       userID,
		Responses:    stored,
		Scores:       result.Scores,
		StarRating:   result.StarRating,
		TierName:     result.TierName,
		ConsentForML: req.ConsentForML,
		CreatedAt:    now,
		CompletedAt:  now,
	}
	if err := s.store.InsertSession(session); err != nil {
		return nil, err
	}

	return &models.AssessmentResult{
		SessionID:  sessionID,
		Scores:     result.Scores,
		StarRating: result.StarRating,
		TierName:   result.TierName,
	}, nil
}

// Preview scores an in-progress assessment without persisting anything.
func (s *Service) Preview(ctx context.Context, req models.PreviewRequest) (*models.PreviewResult, error) {
	responses, err := decodeResponses(req.Responses)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.ScorePartial(ctx, responses)
	if err != nil {
		return nil, err
	}

	return &models.PreviewResult{
		Scores:     result.Scores,
		StarRating: result.StarRating,
		TierName:   result.TierName,
		Answered:   len(responses),
		Total:      len(scoring.Catalog),
	}, nil
}

// GetSession loads a persisted session.
func (s *Service) GetSession(sessionID string) (*models.AssessmentSession, error) {
	return s.store.GetSession(sessionID)
}

// TagOutcome records a pilot follow-up outcome against a session.
func (s *Service) TagOutcome(sessionID, tag string) error {
	if !ValidOutcomeTags[tag] {
		return fmt.Errorf("invalid outcome tag %q", tag)
	}
	return s.store.SetOutcomeTag(sessionID, tag)
}

// History lists a user's past sessions.
func (s *Service) History(userID int64, limit int) ([]models.AssessmentSession, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.store.ListSessionsForUser(userID, limit)
}

// PilotMetrics returns the aggregated dashboard rollup.
func (s *Service) PilotMetrics() (*models.PilotMetrics, error) {
	return s.store.PilotMetrics()
}

// CatalogResponse returns the published question catalog. Scoring maps are
// server-side only.
func (s *Service) CatalogResponse() models.CatalogResponse {
	return models.CatalogResponse{
		Questions:       scoring.Catalog,
		CategoryWeights: scoring.CategoryWeights,
		StarTiers:       scoring.StarTiers,
		ScoringVersion:  scoring.Version,
	}
}

// decodeResponses turns raw wire payloads into typed responses, using the
// catalog to pick the expected shape for each question.
func decodeResponses(inputs []models.ResponseInput) ([]models.AssessmentResponse, error) {
	responses := make([]models.AssessmentResponse, 0, len(inputs))
	for _, in := range inputs {
		q := scoring.QuestionByID(in.QuestionID)
		if q == nil {
			return nil, &scoring.UnknownOptionError{QuestionID: in.QuestionID}
		}

		value, err := models.DecodeResponseValue(q.Type, in.Response)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", in.QuestionID, err)
		}

		ts := time.Now().UTC()
		if in.Timestamp != nil {
			ts = *in.Timestamp
		}
		responses = append(responses, models.AssessmentResponse{
			QuestionID: in.QuestionID,
			Category:   in.Category,
			Value:      value,
			Timestamp:  ts,
		})
	}
	return responses, nil
}
