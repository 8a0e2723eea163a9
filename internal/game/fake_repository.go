package game

import (
	"context"

	"github.com/edurift/levelmap-server/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of Repository and
// TokenRepository for testing.
type FakeRepository struct {
	Sessions []domain.TelemetrySession
	Scores   []domain.Score
	Tokens   map[string]string // uid -> auth token

	// Err forces the next call to fail, for error paths.
	Err error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		Tokens: make(map[string]string),
	}
}

func (f *FakeRepository) TokenMatches(ctx context.Context, uid, token string) (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	stored, ok := f.Tokens[uid]
	return ok && stored == token, nil
}

func (f *FakeRepository) InsertSession(ctx context.Context, s domain.TelemetrySession) error {
	if f.Err != nil {
		return f.Err
	}
	f.Sessions = append(f.Sessions, s)
	return nil
}

func (f *FakeRepository) InsertScore(ctx context.Context, sc domain.Score) error {
	if f.Err != nil {
		return f.Err
	}
	f.Scores = append(f.Scores, sc)
	return nil
}
