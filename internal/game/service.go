package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/edurift/levelmap-server/internal/domain"
	"github.com/edurift/levelmap-server/internal/logger"
)

// ErrStore wraps relational store failures so the HTTP layer can map them to
// empty-body 500s without inspecting driver error types.
var ErrStore = errors.New("store operation failed")

// TokenRepository validates session tokens against persisted account rows
type TokenRepository interface {
	TokenMatches(ctx context.Context, uid, token string) (bool, error)
}

// Repository defines telemetry and score persistence operations
type Repository interface {
	InsertSession(ctx context.Context, s domain.TelemetrySession) error
	InsertScore(ctx context.Context, sc domain.Score) error
}

// Service defines the interface for game session operations
type Service interface {
	// ValidateToken reports whether the exact (userID, token) pair is
	// stored. Any single-character difference in either field is invalid.
	ValidateToken(ctx context.Context, userID, token string) (bool, error)

	// SubmitTelemetry persists one normalized telemetry row.
	SubmitTelemetry(ctx context.Context, s domain.TelemetrySession) error

	// SubmitScore appends one score row.
	SubmitScore(ctx context.Context, sc domain.Score) error
}

type service struct {
	tokens TokenRepository
	repo   Repository
}

// NewService creates a new game session service
func NewService(tokens TokenRepository, repo Repository) Service {
	return &service{tokens: tokens, repo: repo}
}

func (s *service) ValidateToken(ctx context.Context, userID, token string) (bool, error) {
	valid, err := s.tokens.TokenMatches(ctx, userID, token)
	if err != nil {
		logger.FromContext(ctx).Error("Token validation query failed", "user_id", userID, "error", err)
		return false, fmt.Errorf("%w: %s", ErrStore, err.Error())
	}
	return valid, nil
}

func (s *service) SubmitTelemetry(ctx context.Context, sess domain.TelemetrySession) error {
	if err := s.repo.InsertSession(ctx, sess); err != nil {
		logger.FromContext(ctx).Error("Failed to persist telemetry session",
			"user_id", sess.UserID,
			"session_id", sess.SessionID,
			"level_id", sess.LevelID,
			"error", err)
		return fmt.Errorf("%w: %s", ErrStore, err.Error())
	}

	logger.FromContext(ctx).Info("Telemetry session saved",
		"user_id", sess.UserID,
		"session_id", sess.SessionID,
		"level_id", sess.LevelID,
		"final_score", sess.FinalScore)
	return nil
}

func (s *service) SubmitScore(ctx context.Context, sc domain.Score) error {
	if err := s.repo.InsertScore(ctx, sc); err != nil {
		logger.FromContext(ctx).Error("Failed to persist score",
			"user_id", sc.UserID,
			"level_id", sc.LevelID,
			"error", err)
		return fmt.Errorf("%w: %s", ErrStore, err.Error())
	}
	return nil
}
