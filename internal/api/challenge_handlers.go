package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/limbo/accountability/pkg/httputil"
)

type CreateChallengeRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	GoalType    string    `json:"goalType"`
	GoalTarget  int       `json:"goalTarget"`
	EntryFee    int64     `json:"entryFee"`
	IsPublic    *bool     `json:"isPublic"`
}

type RecordProgressRequest struct {
	Date   time.Time `json:"date"`
	Value  int       `json:"value"`
	Source string    `json:"source"`
}

func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateChallengeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenge, err := s.challengeService.CreateChallenge(ctx, uid, &service.CreateChallengeRequest{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GoalType:    entity.GoalType(req.GoalType),
		GoalTarget:  req.GoalTarget,
		EntryFee:    req.EntryFee,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create challenge error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge fields", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create challenge error: creator doesn't exist")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "creator not found", nil)
		default:
			logger.Error("create challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating challenge", nil)
		}
		return
	}
	httputil.WriteDataResponse(w, http.StatusCreated, challenge)
	logger.Info("challenge created")
}

func (s *Server) GetChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	challenges, err := s.challengeService.ListChallenges(ctx, uid)
	if err != nil {
		logger.Error("getting challenges list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting challenges list", nil)
		return
	}
	httputil.WriteListResponse(w, http.StatusOK, len(challenges), challenges)
	logger.Info("challenges provided")
}

func (s *Server) GetChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("get challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenge, err := s.challengeService.GetChallenge(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("get challenge error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrPrivateChallenge):
			logger.Error("get challenge error: private challenge")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "challenge is private", nil)
		default:
			logger.Error("get challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting challenge", nil)
		}
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, challenge)
	logger.Info("challenge provided")
}

func (s *Server) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("join challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("join challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	participation, err := s.challengeService.JoinChallenge(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("join challenge error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrChallengeStarted):
			logger.Error("join challenge error: challenge already started")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "challenge has already started", nil)
		case errors.Is(err, errorvalues.ErrAlreadyJoined):
			logger.Error("join challenge error: already joined")
			httputil.WriteErrorResponse(w, http.StatusConflict, "already joined this challenge", nil)
		default:
			logger.Error("join challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while joining challenge", nil)
		}
		return
	}
	httputil.WriteDataResponse(w, http.StatusCreated, participation)
	logger.Info("challenge joined")
}

func (s *Server) RecordProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("record progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("record progress error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	var req RecordProgressRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("record progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	record, err := s.challengeService.RecordProgress(ctx, id, uid, &service.RecordProgressRequest{
		Date:   req.Date,
		Value:  req.Value,
		Source: entity.ProgressSource(req.Source),
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("record progress error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid progress fields", err)
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("record progress error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrParticipationNotFound):
			logger.Error("record progress error: not a participant")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "not a participant of this challenge", nil)
		case errors.Is(err, errorvalues.ErrPaymentRequired):
			logger.Error("record progress error: entry fee unpaid")
			httputil.WriteErrorResponse(w, http.StatusPaymentRequired, "entry fee hasn't been paid", nil)
		case errors.Is(err, errorvalues.ErrDateOutOfRange):
			logger.Error("record progress error: date outside challenge period")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date outside challenge period", nil)
		default:
			logger.Error("record progress error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while recording progress", nil)
		}
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, record)
	logger.Info("progress recorded")
}

func (s *Server) MarkPayment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mark payment error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("mark payment error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	participation, err := s.challengeService.MarkPayment(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrParticipationNotFound):
			logger.Error("mark payment error: not a participant")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "not a participant of this challenge", nil)
		case errors.Is(err, errorvalues.ErrAlreadyPaid):
			logger.Error("mark payment error: already paid")
			httputil.WriteErrorResponse(w, http.StatusConflict, "entry fee already paid", nil)
		default:
			logger.Error("mark payment error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while marking payment", nil)
		}
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, participation)
	logger.Info("payment marked")
}
