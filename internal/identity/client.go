package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/edurift/levelmap-server/internal/logger"
)

// Client talks to the Supabase-compatible identity provider over HTTP.
// It is constructed once at startup and shared read-only by all requests.
//
// Every call returns exactly one of (payload, error). Nothing is retried:
// failures surface to the caller on first failure.
type Client struct {
	BaseURL    string
	AnonKey    string
	ServiceKey string
	HTTPClient *http.Client
}

// Payload is the decoded identity provider response body. The provider's
// error shapes ride along in Message and ErrorDescription.
type Payload struct {
	User             *User  `json:"user"`
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

// User is the provider-issued user object embedded in auth responses.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// NewClient creates a new identity provider client
func NewClient(baseURL, anonKey, serviceKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		AnonKey:    anonKey,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignUp creates a new credential with the identity provider. The provider
// hashes the password; this service never sees hashes. Success requires an
// HTTP 200/201 response carrying a structured user object; anything else is
// an error with the provider's message extracted when available.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Payload, error) {
	payload, status, err := c.postCredentials(ctx, PathSignUp, email, password)
	if err != nil {
		return nil, fmt.Errorf("%s", ErrMsgNetworkSignup)
	}

	if status == http.StatusOK || status == http.StatusCreated {
		if payload != nil && payload.User != nil {
			return payload, nil
		}
		return nil, fmt.Errorf("%s", ErrMsgInvalidSignupResponse)
	}

	return nil, fmt.Errorf("%s", extractErrorMessage(payload, ErrMsgSignupFailed))
}

// SignIn exchanges email/password for an access token. Success is any HTTP
// 200 with a decodable JSON body.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Payload, error) {
	payload, status, err := c.postCredentials(ctx, PathSignIn, email, password)
	if err != nil {
		return nil, fmt.Errorf("%s", ErrMsgNetworkSignin)
	}

	if status == http.StatusOK {
		if payload != nil {
			return payload, nil
		}
		return nil, fmt.Errorf("%s", ErrMsgInvalidSigninResponse)
	}

	return nil, fmt.Errorf("%s", extractErrorMessage(payload, ErrMsgSigninFailed))
}

// GetUser fetches the user behind an access token. Any decodable JSON body is
// a success regardless of status code - that is the provider contract this
// service inherited, documented as-is.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+PathGetUser, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(HeaderAPIKey, c.AnonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.FromContext(ctx).Warn("Identity provider request failed", "path", PathGetUser, "error", err)
		return nil, fmt.Errorf("%s", ErrMsgNetworkGetUser)
	}
	defer resp.Body.Close()

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s", ErrMsgInvalidGetUserResponse)
	}
	return &payload, nil
}

// postCredentials issues a JSON credential request and decodes the body.
// A nil error with a nil payload means the body was not valid JSON.
func (c *Client) postCredentials(ctx context.Context, path, email, password string) (*Payload, int, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderAPIKey, c.AnonKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.FromContext(ctx).Warn("Identity provider request failed", "path", path, "error", err)
		return nil, 0, err
	}
	defer resp.Body.Close()

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, resp.StatusCode, nil
	}
	return &payload, resp.StatusCode, nil
}

// extractErrorMessage pulls a human-readable message out of the provider's
// known error fields, falling back to a generic one.
func extractErrorMessage(payload *Payload, fallback string) string {
	if payload != nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.ErrorDescription != "" {
			return payload.ErrorDescription
		}
	}
	return fallback
}
