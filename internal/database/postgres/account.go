package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edurift/levelmap-server/internal/domain"
)

// AccountRepository implements account persistence for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// InsertAccount inserts a profile row for a freshly signed-up user. An email
// conflict is absorbed as a no-op - the existing row is left untouched, never
// overwritten. Returns whether a row was actually created.
func (r *AccountRepository) InsertAccount(ctx context.Context, account domain.Account) (bool, error) {
	query := `
		INSERT INTO users (uid, username, email, school_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, account.UID, account.Username, account.Email, account.SchoolName)
	if err != nil {
		return false, fmt.Errorf("failed to insert account: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetAuthToken overwrites the session token on the account row matching uid.
// Updating zero rows is not an error: the original flow trusts the caller's
// user identifier.
func (r *AccountRepository) SetAuthToken(ctx context.Context, uid, token string) error {
	query := `UPDATE users SET auth_token = $1 WHERE uid = $2`
	if _, err := r.db.Exec(ctx, query, token, uid); err != nil {
		return fmt.Errorf("failed to set auth token: %w", err)
	}
	return nil
}

// TokenMatches reports whether the exact (uid, auth_token) pair is stored.
func (r *AccountRepository) TokenMatches(ctx context.Context, uid, token string) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE uid = $1 AND auth_token = $2`
	var count int
	if err := r.db.QueryRow(ctx, query, uid, token).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to match auth token: %w", err)
	}
	return count > 0, nil
}

// GetAccountByEmail fetches an account row by email. Used by tests and admin
// tooling; the request path never reads accounts back.
func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT uid, username, email, COALESCE(school_name, ''), COALESCE(auth_token, '')
		FROM users
		WHERE email = $1
	`
	var account domain.Account
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.UID,
		&account.Username,
		&account.Email,
		&account.SchoolName,
		&account.AuthToken,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return &account, nil
}
