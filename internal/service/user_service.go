package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo            repository.UsersRepositoryI
	leaderboardRepo repository.LeaderboardRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, leaderboardRepo repository.LeaderboardRepositoryI) *UserService {
	if usersRepo == nil || leaderboardRepo == nil {
		log.Fatal("on user service provided nil repos")
	}
	return &UserService{
		repo:            usersRepo,
		leaderboardRepo: leaderboardRepo,
	}
}

func (us *UserService) Signup(ctx context.Context, req *SignupRequest) (*entity.User, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrValidation
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := entity.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: passwordHash,
	}
	err = us.repo.Create(ctx, &user)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmailTaken), errors.Is(err, errorvalues.ErrUsernameTaken):
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return &user, nil
}

func (us *UserService) Signin(ctx context.Context, login, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmailOrUsername(ctx, login)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			// Same answer as a wrong password so the caller can't probe
			// which logins exist
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetMe(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	// First getMe after signup seeds the leaderboard entry at the tail
	// of the ranking
	err = us.leaderboardRepo.EnsureEntry(ctx, user.ID, user.Username)
	if err != nil {
		return nil, errors.New("seeding leaderboard entry error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
