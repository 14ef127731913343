package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/httputil"
)

type DepositRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

func (s *Server) GetWallet(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get wallet error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	balance, err := s.walletService.GetBalance(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get wallet error: user doesn't exist")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("get wallet error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting balance", nil)
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, BalanceResponse{Balance: balance})
	logger.Info("balance provided")
}

func (s *Server) GetTransactionHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get transactions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	transactions, err := s.walletService.GetTransactionHistory(ctx, uid)
	if err != nil {
		logger.Error("get transactions error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting transaction history", nil)
		return
	}
	httputil.WriteListResponse(w, http.StatusOK, len(transactions), transactions)
	logger.Info("transaction history provided")
}

func (s *Server) Deposit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("deposit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DepositRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("deposit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	balance, err := s.walletService.Deposit(ctx, uid, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("deposit error: non-positive amount")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "deposit amount must be positive", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("deposit error: user doesn't exist")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
		default:
			logger.Error("deposit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while depositing", nil)
		}
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, BalanceResponse{Balance: balance})
	logger.Info("deposit applied")
}
