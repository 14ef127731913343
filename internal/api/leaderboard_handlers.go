package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/httputil"
)

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	entries, err := s.leaderboardService.ListLeaderboard(ctx)
	if err != nil {
		logger.Error("get leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting leaderboard", nil)
		return
	}
	httputil.WriteListResponse(w, http.StatusOK, len(entries), entries)
	logger.Info("leaderboard provided")
}

func (s *Server) GetUserRank(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		logger.Error("get user rank error: invalid user id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	standing, err := s.leaderboardService.GetUserRank(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			logger.Error("get user rank error: no leaderboard entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "leaderboard entry doesn't exist", nil)
			return
		}
		logger.Error("get user rank error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting user rank", nil)
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, standing)
	logger.Info("user rank provided")
}
