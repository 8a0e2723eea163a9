package account

import (
	"context"
	"errors"

	"github.com/edurift/levelmap-server/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of Repository for
// testing. It mirrors the store-level conflict semantics: inserts with an
// existing email are absorbed without touching the stored row.
type FakeRepository struct {
	accounts map[string]*domain.Account // keyed by email

	// InsertErr / TokenErr force the next call to fail, for error paths.
	InsertErr error
	TokenErr  error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (f *FakeRepository) InsertAccount(ctx context.Context, account domain.Account) (bool, error) {
	if f.InsertErr != nil {
		return false, f.InsertErr
	}
	if _, exists := f.accounts[account.Email]; exists {
		return false, nil
	}
	a := account
	f.accounts[account.Email] = &a
	return true, nil
}

func (f *FakeRepository) SetAuthToken(ctx context.Context, uid, token string) error {
	if f.TokenErr != nil {
		return f.TokenErr
	}
	for _, a := range f.accounts {
		if a.UID == uid {
			a.AuthToken = token
			return nil
		}
	}
	// Matching no rows is still success, same as the UPDATE in the real store.
	return nil
}

func (f *FakeRepository) TokenMatches(ctx context.Context, uid, token string) (bool, error) {
	if f.TokenErr != nil {
		return false, f.TokenErr
	}
	for _, a := range f.accounts {
		if a.UID == uid && a.AuthToken != "" && a.AuthToken == token {
			return true, nil
		}
	}
	return false, nil
}

// AccountByEmail exposes stored state to tests.
func (f *FakeRepository) AccountByEmail(email string) (*domain.Account, error) {
	a, ok := f.accounts[email]
	if !ok {
		return nil, errors.New("account not found")
	}
	return a, nil
}
