package assessment

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gutcheck/backend/internal/models"
)

// Store persists completed assessment sessions.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// InsertSession writes a scored session. Sessions are immutable after
// insertion except for the outcome tag.
func (s *Store) InsertSession(session *models.AssessmentSession) error {
	scores, err := json.Marshal(session.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO assessment_sessions
			(session_id, user_id, responses, scores, overall_score, star_rating,
			 tier_name, scoring_version, consent_for_ml, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		session.SessionID, session.UserID, []byte(session.Responses), scores,
		session.Scores.OverallScore, session.StarRating, session.TierName,
		session.Scores.ScoringVersion, session.ConsentForML,
		session.CreatedAt, session.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetSession loads one session by ID.
func (s *Store) GetSession(sessionID string) (*models.AssessmentSession, error) {
	var (
		session    models.AssessmentSession
		responses  []byte
		scores     []byte
		outcomeTag sql.NullString
	)

	err := s.db.QueryRow(`
		SELECT session_id, user_id, responses, scores, star_rating, tier_name,
		       consent_for_ml, outcome_tag, created_at, completed_at
		FROM assessment_sessions
		WHERE session_id = $1`,
		sessionID,
	).Scan(
		&session.SessionID, &session.UserID, &responses, &scores,
		&session.StarRating, &session.TierName, &session.ConsentForML,
		&outcomeTag, &session.CreatedAt, &session.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(scores, &session.Scores); err != nil {
		return nil, fmt.Errorf("unmarshal scores: %w", err)
	}
	session.Responses = responses
	if outcomeTag.Valid {
		session.OutcomeTag = outcomeTag.String
	}
	return &session, nil
}

// SetOutcomeTag records a follow-up outcome for a completed session.
func (s *Store) SetOutcomeTag(sessionID, tag string) error {
	result, err := s.db.Exec(`
		UPDATE assessment_sessions SET outcome_tag = $1 WHERE session_id = $2`,
		tag, sessionID,
	)
	if err != nil {
		return fmt.Errorf("set outcome tag: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListSessionsForUser returns a user's sessions, newest first.
func (s *Store) ListSessionsForUser(userID int64, limit int) ([]models.AssessmentSession, error) {
	rows, err := s.db.Query(`
		SELECT session_id, star_rating, tier_name, scores, created_at, completed_at
		FROM assessment_sessions
		WHERE user_id = $1
		ORDER BY completed_at DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.AssessmentSession
	for rows.Next() {
		var session models.AssessmentSession
		var scores []byte
		if err := rows.Scan(
			&session.SessionID, &session.StarRating, &session.TierName,
			&scores, &session.CreatedAt, &session.CompletedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(scores, &session.Scores); err != nil {
			return nil, fmt.Errorf("unmarshal scores: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// PilotMetrics aggregates completed sessions into the dashboard rollup.
func (s *Store) PilotMetrics() (*models.PilotMetrics, error) {
	rows, err := s.db.Query(`
		SELECT overall_score, star_rating, outcome_tag
		FROM assessment_sessions`)
	if err != nil {
		return nil, fmt.Errorf("pilot metrics: %w", err)
	}
	defer rows.Close()

	metrics := &models.PilotMetrics{
		ScoreRanges: map[string]int{
			"90-100": 0, "80-89": 0, "70-79": 0, "60-69": 0, "35-59": 0,
		},
		StarRatings: map[string]int{
			"5-star": 0, "4-star": 0, "3-star": 0, "2-star": 0, "1-star": 0,
		},
		Outcomes: map[string]int{
			"breakthrough": 0, "growth": 0, "stagnation": 0, "pending": 0,
		},
	}

	var scoreSum int
	for rows.Next() {
		var (
			score      int
			stars      int
			outcomeTag sql.NullString
		)
		if err := rows.Scan(&score, &stars, &outcomeTag); err != nil {
			return nil, err
		}

		metrics.TotalAssessments++
		metrics.CompletedAssessments++
		scoreSum += score

		switch {
		case score >= 90:
			metrics.ScoreRanges["90-100"]++
		case score >= 80:
			metrics.ScoreRanges["80-89"]++
		case score >= 70:
			metrics.ScoreRanges["70-79"]++
		case score >= 60:
			metrics.ScoreRanges["60-69"]++
		case score >= 35:
			metrics.ScoreRanges["35-59"]++
		}

		if stars >= 1 && stars <= 5 {
			metrics.StarRatings[fmt.Sprintf("%d-star", stars)]++
		}

		if _, known := metrics.Outcomes[outcomeTag.String]; outcomeTag.Valid && known {
			metrics.Outcomes[outcomeTag.String]++
		} else {
			metrics.Outcomes["pending"]++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if metrics.CompletedAssessments > 0 {
		metrics.AverageScore = float64(scoreSum) / float64(metrics.CompletedAssessments)
	}
	if metrics.TotalAssessments > 0 {
		metrics.CompletionRate = float64(metrics.CompletedAssessments) / float64(metrics.TotalAssessments) * 100
	}
	return metrics, nil
}
