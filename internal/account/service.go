package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/edurift/levelmap-server/internal/domain"
	"github.com/edurift/levelmap-server/internal/identity"
	"github.com/edurift/levelmap-server/internal/logger"
)

// ProviderError reports an identity provider rejection. Message is the
// human-readable text extracted from the provider response; the HTTP layer
// embeds it in the in-body error envelope the frontend expects.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string { return e.Message }

// StoreError reports a relational store failure during registration or
// launch. The signup handler alone echoes its text into the response body;
// everything else maps it to an empty-body 500.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

// Repository defines account persistence operations
type Repository interface {
	InsertAccount(ctx context.Context, account domain.Account) (created bool, err error)
	SetAuthToken(ctx context.Context, uid, token string) error
}

// Identity defines the identity provider operations the account service needs
type Identity interface {
	SignUp(ctx context.Context, email, password string) (*identity.Payload, error)
	SignIn(ctx context.Context, email, password string) (*identity.Payload, error)
	GetUser(ctx context.Context, accessToken string) (*identity.Payload, error)
}

// RegisterResult reports the outcome of a successful registration
type RegisterResult struct {
	UserID string
	// Created is false when the email already had a profile row; the
	// existing row is left untouched.
	Created bool
}

// Service defines the interface for account operations
type Service interface {
	// Register creates a credential with the identity provider, then
	// persists a local profile row. Identity failures are *ProviderError;
	// insert failures are *StoreError.
	Register(ctx context.Context, email, password, school, username string) (RegisterResult, error)

	// SignIn exchanges credentials for a provider access token.
	SignIn(ctx context.Context, email, password string) (*identity.Payload, error)

	// CurrentUser fetches the user behind a provider access token. The
	// provider payload is passed through unjudged, including its error
	// fields.
	CurrentUser(ctx context.Context, accessToken string) (*identity.Payload, error)

	// LaunchGame mints a fresh session token, persists it against the
	// account row, and returns the launch URL embedding userID and token.
	// Each call overwrites the previous token; the last write wins.
	LaunchGame(ctx context.Context, userID string) (string, error)

	// Courses returns the static course catalog.
	Courses() []domain.Course
}

type service struct {
	repo        Repository
	identity    Identity
	catalog     *Catalog
	gameBaseURL string
}

// NewService creates a new account service
func NewService(repo Repository, idp Identity, catalog *Catalog, gameBaseURL string) Service {
	return &service{
		repo:        repo,
		identity:    idp,
		catalog:     catalog,
		gameBaseURL: gameBaseURL,
	}
}

func (s *service) Register(ctx context.Context, email, password, school, username string) (RegisterResult, error) {
	log := logger.FromContext(ctx)

	payload, err := s.identity.SignUp(ctx, email, password)
	if err != nil {
		log.Warn("Identity provider signup failed", "email", email, "error", err)
		return RegisterResult{}, &ProviderError{Message: err.Error()}
	}

	// Prefer the provider-issued identifier; fall back to a local UUID when
	// the payload carries none.
	userID := ""
	if payload.User != nil {
		userID = payload.User.ID
	}
	if userID == "" {
		userID = uuid.NewString()
		log.Debug("Provider payload carried no user id, generated locally", "user_id", userID)
	}

	created, err := s.repo.InsertAccount(ctx, domain.Account{
		UID:        userID,
		Username:   username,
		Email:      email,
		SchoolName: school,
	})
	if err != nil {
		log.Error("Failed to insert account", "email", email, "error", err)
		return RegisterResult{}, &StoreError{Err: err}
	}

	log.Info("Account registered", "user_id", userID, "created", created)
	return RegisterResult{UserID: userID, Created: created}, nil
}

func (s *service) SignIn(ctx context.Context, email, password string) (*identity.Payload, error) {
	payload, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		logger.FromContext(ctx).Warn("Identity provider signin failed", "email", email, "error", err)
		return nil, &ProviderError{Message: err.Error()}
	}
	return payload, nil
}

func (s *service) CurrentUser(ctx context.Context, accessToken string) (*identity.Payload, error) {
	payload, err := s.identity.GetUser(ctx, accessToken)
	if err != nil {
		logger.FromContext(ctx).Warn("Identity provider user fetch failed", "error", err)
		return nil, &ProviderError{Message: err.Error()}
	}
	return payload, nil
}

func (s *service) LaunchGame(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()

	if err := s.repo.SetAuthToken(ctx, userID, token); err != nil {
		logger.FromContext(ctx).Error("Failed to persist session token", "user_id", userID, "error", err)
		return "", &StoreError{Err: err}
	}

	// Shape: <base>/#/play?userID=X&authToken=Y - the game client parses
	// this fragment, so the two query parameters are load-bearing.
	gameURL := fmt.Sprintf("%s/#/play?userID=%s&authToken=%s", s.gameBaseURL, userID, token)

	logger.FromContext(ctx).Info("Game launch token issued", "user_id", userID)
	return gameURL, nil
}

func (s *service) Courses() []domain.Course {
	return s.catalog.Courses()
}
