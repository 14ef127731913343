package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/limbo/accountability/pkg/httputil"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type SigninRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

type AuthResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SignupRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("signup error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Signup(ctx, &service.SignupRequest{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("signup error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid signup fields", err)
		case errors.Is(err, errorvalues.ErrEmailTaken):
			logger.Error("signup error: email taken")
			httputil.WriteErrorResponse(w, http.StatusConflict, "email already registered", nil)
		case errors.Is(err, errorvalues.ErrUsernameTaken):
			logger.Error("signup error: username taken")
			httputil.WriteErrorResponse(w, http.StatusConflict, "username already taken", nil)
		default:
			logger.Error("signup error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during signup", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("signup error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteDataResponse(w, http.StatusCreated, AuthResponse{
		User:  user,
		Token: token,
	})
	logger.Info("successful signup")
}

func (s *Server) Signin(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SigninRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("signin error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Signin(ctx, req.EmailOrUsername, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			// One message for both unknown login and wrong password
			logger.Error("signin error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid credentials", nil)
		default:
			logger.Error("signin error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during signin", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("signin error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, AuthResponse{
		User:  user,
		Token: token,
	})
	logger.Info("successful signin")
}

func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get me error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.GetMe(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get me error: user doesn't exist")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("get me error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting user", nil)
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, map[string]any{"user": user})
	logger.Info("current user provided")
}
