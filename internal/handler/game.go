package handler

import (
	"net/http"
	"strconv"

	"github.com/edurift/levelmap-server/internal/domain"
	"github.com/edurift/levelmap-server/internal/game"
	"github.com/edurift/levelmap-server/internal/logger"
	"github.com/edurift/levelmap-server/internal/metrics"
)

// ValidateTokenRequest carries the (userID, authToken) pair the game client
// received in its launch URL.
type ValidateTokenRequest struct {
	UserID    string `json:"userID" validate:"required"`
	AuthToken string `json:"authToken" validate:"required"`
}

// ValidateTokenResponse reports whether the pair matches the stored token.
type ValidateTokenResponse struct {
	Valid bool `json:"valid"`
}

// HandleValidateToken handles POST /api/game/validate.
// @Summary Validate a session token
// @Tags game
// @Accept json
// @Produce json
// @Success 200 {object} ValidateTokenResponse
// @Failure 400 "malformed request body"
// @Failure 500 "store failure"
// @Router /api/game/validate [post]
func HandleValidateToken(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ValidateTokenRequest
		if err := decodeBody(r, &req); err != nil {
			log.Warn("Failed to decode validate request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			log.Warn("Invalid validate request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}

		valid, err := gameService.ValidateToken(r.Context(), req.UserID, req.AuthToken)
		if err != nil {
			writeEmpty(w, http.StatusInternalServerError)
			return
		}

		metrics.TokenValidationsTotal.WithLabelValues(strconv.FormatBool(valid)).Inc()
		writeJSON(w, http.StatusOK, ValidateTokenResponse{Valid: valid})
	}
}

// TelemetryRequest mirrors the payload the game client posts at the end of a
// level run. HintUsed tolerates both a JSON bool and the strings the older
// client builds ("true" means true, anything else false). TimeToFindZone is
// optional and defaults to zero.
type TelemetryRequest struct {
	UserID           string        `json:"userID" validate:"required"`
	SessionID        string        `json:"sessionID" validate:"required"`
	LevelID          string        `json:"levelID" validate:"required"`
	TotalQuestions   int           `json:"totalQuestions"`
	WrongAnswers     int           `json:"wrongAnswers"`
	SceneRuns        int           `json:"sceneRuns"`
	TimeToFindZone   float64       `json:"timeToFindZone"`
	InitialTimestamp string        `json:"initialTimestamp" validate:"required"`
	FinalTimestamp   string        `json:"finalTimestamp" validate:"required"`
	HintUsed         game.FlexBool `json:"hintUsed"`
	FinalScore       int           `json:"finalScore"`
}

// SavedResponse acknowledges a persisted telemetry session.
type SavedResponse struct {
	Status string `json:"status"`
}

// HandleSubmitTelemetry handles POST /api/game/telemetry.
// @Summary Record a telemetry session
// @Tags game
// @Accept json
// @Produce json
// @Success 200 {object} SavedResponse
// @Failure 400 "malformed request body"
// @Failure 500 "store failure"
// @Router /api/game/telemetry [post]
func HandleSubmitTelemetry(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TelemetryRequest
		if err := decodeBody(r, &req); err != nil {
			log.Warn("Failed to decode telemetry request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			log.Warn("Invalid telemetry request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}

		session := domain.TelemetrySession{
			UserID:           req.UserID,
			SessionID:        req.SessionID,
			LevelID:          req.LevelID,
			TotalQuestions:   req.TotalQuestions,
			WrongAnswers:     req.WrongAnswers,
			SceneRuns:        req.SceneRuns,
			TimeToFindZone:   req.TimeToFindZone,
			TimestampStart:   req.InitialTimestamp,
			TimestampEnd:     req.FinalTimestamp,
			HintUsed:         bool(req.HintUsed),
			FinalScore:       req.FinalScore,
		}

		if err := gameService.SubmitTelemetry(r.Context(), session); err != nil {
			writeEmpty(w, http.StatusInternalServerError)
			return
		}

		metrics.TelemetryEventsTotal.Inc()
		writeJSON(w, http.StatusOK, SavedResponse{Status: StatusSaved})
	}
}

// ScoreRequest carries a final score for a completed level.
type ScoreRequest struct {
	UserID     string `json:"userID" validate:"required"`
	LevelID    string `json:"levelID" validate:"required"`
	FinalScore int    `json:"finalScore"`
}

// ScoreResponse acknowledges a persisted score.
type ScoreResponse struct {
	Success bool `json:"success"`
}

// HandleSubmitScore handles POST /api/game/score.
// @Summary Record a final level score
// @Tags game
// @Accept json
// @Produce json
// @Success 200 {object} ScoreResponse
// @Failure 400 "malformed request body"
// @Failure 500 "store failure"
// @Router /api/game/score [post]
func HandleSubmitScore(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ScoreRequest
		if err := decodeBody(r, &req); err != nil {
			log.Warn("Failed to decode score request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			log.Warn("Invalid score request", "error", err)
			writeEmpty(w, http.StatusBadRequest)
			return
		}

		score := domain.Score{
			UserID:     req.UserID,
			LevelID:    req.LevelID,
			FinalScore: req.FinalScore,
		}

		if err := gameService.SubmitScore(r.Context(), score); err != nil {
			writeEmpty(w, http.StatusInternalServerError)
			return
		}

		metrics.ScoreSubmissionsTotal.Inc()
		writeJSON(w, http.StatusOK, ScoreResponse{Success: true})
	}
}
