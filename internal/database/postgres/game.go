package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edurift/levelmap-server/internal/domain"
)

// GameRepository implements telemetry and score persistence for PostgreSQL
type GameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

// InsertSession appends one telemetry row. Telemetry is append-only; there is
// no uniqueness or foreign-key enforcement by design.
func (r *GameRepository) InsertSession(ctx context.Context, s domain.TelemetrySession) error {
	query := `
		INSERT INTO telemetry_sessions
			(user_id, session_id, level_id, total_questions, wrong_answers, scene_runs,
			 time_zone_3d, timestamp_start, timestamp_end, hint_used, final_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		s.UserID, s.SessionID, s.LevelID,
		s.TotalQuestions, s.WrongAnswers, s.SceneRuns,
		s.TimeToFindZone, s.TimestampStart, s.TimestampEnd,
		s.HintUsed, s.FinalScore,
	)
	if err != nil {
		return fmt.Errorf("failed to insert telemetry session: %w", err)
	}
	return nil
}

// InsertScore appends one score row. Multiple scores per (user, level) are
// valid - scores are history, not best-score.
func (r *GameRepository) InsertScore(ctx context.Context, sc domain.Score) error {
	query := `INSERT INTO scores (user_id, level_id, score) VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, query, sc.UserID, sc.LevelID, sc.FinalScore); err != nil {
		return fmt.Errorf("failed to insert score: %w", err)
	}
	return nil
}

// GetScores returns the score history for a user, newest first.
func (r *GameRepository) GetScores(ctx context.Context, userID string) ([]domain.Score, error) {
	query := `
		SELECT user_id, level_id, score
		FROM scores
		WHERE user_id = $1
		ORDER BY id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var scores []domain.Score
	for rows.Next() {
		var sc domain.Score
		if err := rows.Scan(&sc.UserID, &sc.LevelID, &sc.FinalScore); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}
