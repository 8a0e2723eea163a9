package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/edurift/levelmap-server/internal/account"
	"github.com/edurift/levelmap-server/internal/logger"
	"github.com/edurift/levelmap-server/internal/metrics"
)

var validate = validator.New()

// SignupRequest represents the request to create a new account.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	School   string `json:"school"`
	Username string `json:"username" validate:"required"`
}

// SignupResponse is the in-body envelope for signup outcomes. Failures from
// the identity provider and the store are reported here with HTTP 200; only
// an unreadable request body produces a bare 400.
type SignupResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  string `json:"userId,omitempty"`
}

// HandleSignup handles POST /api/auth/signup.
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} SignupResponse
// @Failure 400 "malformed request body"
// @Router /api/auth/signup [post]
func HandleSignup(accountService account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SignupRequest
		if err := decodeBody(r, &req); err != nil {
			log.Warn("Failed to decode signup request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			log.Warn("Invalid signup request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}

		result, err := accountService.Register(r.Context(), req.Email, req.Password, req.School, req.Username)
		if err != nil {
			metrics.SignupsTotal.WithLabelValues(StatusError).Inc()

			var provErr *account.ProviderError
			if errors.As(err, &provErr) {
				writeJSON(w, http.StatusOK, SignupResponse{
					Status:  StatusError,
					Message: fmt.Sprintf(MsgSignupFailedFmt, provErr.Message),
				})
				return
			}

			var storeErr *account.StoreError
			if errors.As(err, &storeErr) {
				// The store error text is echoed back here. Only signup
				// does this; the game endpoints return bare 500s.
				writeJSON(w, http.StatusOK, SignupResponse{
					Status:  StatusError,
					Message: fmt.Sprintf(MsgDatabaseErrFmt, storeErr.Error()),
				})
				return
			}

			log.Error("Unexpected signup failure", "error", err)
			writeEmpty(w, http.StatusInternalServerError)
			return
		}

		userID := UserIDExists
		if result.Created {
			userID = UserIDCreated
		}
		metrics.SignupsTotal.WithLabelValues(userID).Inc()

		writeJSON(w, http.StatusOK, SignupResponse{
			Status:  StatusSuccess,
			Message: MsgAccountCreated,
			UserID:  userID,
		})
	}
}

// SigninRequest represents the request to sign in.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SigninResponse carries the provider-issued access token on success.
type SigninResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
	UserID      string `json:"userId,omitempty"`
}

// HandleSignin handles POST /api/auth/signin.
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} SigninResponse
// @Failure 400 "malformed request body"
// @Router /api/auth/signin [post]
func HandleSignin(accountService account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SigninRequest
		if err := decodeBody(r, &req); err != nil {
			log.Warn("Failed to decode signin request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			log.Warn("Invalid signin request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}

		payload, err := accountService.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			var provErr *account.ProviderError
			if errors.As(err, &provErr) {
				writeJSON(w, http.StatusOK, SigninResponse{
					Status:  StatusError,
					Message: fmt.Sprintf(MsgSigninFailedFmt, provErr.Message),
				})
				return
			}
			log.Error("Unexpected signin failure", "error", err)
			writeEmpty(w, http.StatusInternalServerError)
			return
		}

		resp := SigninResponse{
			Status:      StatusSuccess,
			AccessToken: payload.AccessToken,
		}
		if payload.User != nil {
			resp.UserID = payload.User.ID
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// UserResponse carries the provider-verified user for a bearer token.
type UserResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	UserID  string `json:"userId,omitempty"`
	Email   string `json:"email,omitempty"`
}

// HandleCurrentUser handles GET /api/auth/user.
// @Summary Fetch the user behind a bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 400 "missing bearer token"
// @Router /api/auth/user [get]
func HandleCurrentUser(accountService account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			log.Warn("Missing bearer token on user fetch")
			writeEmpty(w, http.StatusBadRequest)
			return
		}

		payload, err := accountService.CurrentUser(r.Context(), token)
		if err != nil {
			var provErr *account.ProviderError
			if errors.As(err, &provErr) {
				writeJSON(w, http.StatusOK, UserResponse{
					Status:  StatusError,
					Message: provErr.Message,
				})
				return
			}
			writeEmpty(w, http.StatusInternalServerError)
			return
		}

		// The provider call succeeds on any decodable JSON, so the payload
		// may carry an error message instead of a user. Pass both through.
		resp := UserResponse{Status: StatusSuccess, Message: payload.Message}
		if payload.User != nil {
			resp.UserID = payload.User.ID
			resp.Email = payload.User.Email
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleListCourses handles GET /api/courses.
// @Summary List the course catalog
// @Tags courses
// @Produce json
// @Success 200 {array} domain.Course
// @Router /api/courses [get]
func HandleListCourses(accountService account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, accountService.Courses())
	}
}

// LaunchRequest represents the request to generate a game launch link.
type LaunchRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// LaunchResponse carries the generated launch URL.
type LaunchResponse struct {
	GameURL string `json:"gameUrl"`
}

// HandleLaunchGame handles POST /api/play/launch.
// @Summary Issue a fresh session token and launch URL
// @Tags play
// @Accept json
// @Produce json
// @Success 200 {object} LaunchResponse
// @Failure 400 "malformed request body"
// @Failure 500 "store failure"
// @Router /api/play/launch [post]
func HandleLaunchGame(accountService account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LaunchRequest
		if err := decodeBody(r, &req); err != nil {
			log.Warn("Failed to decode launch request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			log.Warn("Invalid launch request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}

		gameURL, err := accountService.LaunchGame(r.Context(), req.UserID)
		if err != nil {
			writeEmpty(w, http.StatusInternalServerError)
			return
		}

		metrics.GameLaunchesTotal.Inc()
		writeJSON(w, http.StatusOK, LaunchResponse{GameURL: gameURL})
	}
}
