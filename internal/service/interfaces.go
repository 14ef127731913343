package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/accountability/pkg/entity"
)

type SignupRequest struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateChallengeRequest struct {
	Title       string          `validate:"required,max=200"`
	Description string          `validate:"required"`
	StartDate   time.Time       `validate:"required"`
	EndDate     time.Time       `validate:"required"`
	GoalType    entity.GoalType `validate:"required,oneof=STEPS WORKOUTS MEDITATION CUSTOM"`
	GoalTarget  int             `validate:"required,gt=0"`
	EntryFee    int64           `validate:"gte=0"`
	// IsPublic defaults to true when the client omits the field
	IsPublic *bool
}

type RecordProgressRequest struct {
	Date   time.Time             `validate:"required"`
	Value  int                   `validate:"gte=0"`
	Source entity.ProgressSource `validate:"omitempty,oneof=MANUAL APPLE_HEALTH GOOGLE_FIT FITBIT"`
}

type UserServiceI interface {
	// Validates credentials shape, hashes the password, creates the user row
	Signup(ctx context.Context, req *SignupRequest) (*entity.User, error)
	// Looks the user up by email or username and compares the password.
	// Both unknown login and wrong password come back as ErrWrongCredentials
	Signin(ctx context.Context, login, password string) (*entity.User, error)
	// Loads the user and lazily seeds their leaderboard entry
	GetMe(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Plain lookup, used by authorization middleware
	GetByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type ChallengeServiceI interface {
	CreateChallenge(ctx context.Context, creatorID uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error)
	ListChallenges(ctx context.Context, requesterID uuid.UUID) ([]*entity.ChallengeSummary, error)
	GetChallenge(ctx context.Context, id, requesterID uuid.UUID) (*entity.ChallengeDetail, error)
	JoinChallenge(ctx context.Context, challengeID, userID uuid.UUID) (*entity.Participation, error)
	RecordProgress(ctx context.Context, challengeID, userID uuid.UUID, req *RecordProgressRequest) (*entity.ProgressRecord, error)
	MarkPayment(ctx context.Context, challengeID, userID uuid.UUID) (*entity.Participation, error)
}

type WalletServiceI interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, error)
	GetTransactionHistory(ctx context.Context, userID uuid.UUID) ([]entity.Transaction, error)
	// Credits the wallet. The only public mutation path
	Deposit(ctx context.Context, userID uuid.UUID, amount int64, description string) (int64, error)
	// Internal all-or-nothing balance mutation plus ledger append
	ApplyTransaction(ctx context.Context, userID uuid.UUID, amount int64, txType, description string, challengeID *uuid.UUID) (int64, error)
}

type LeaderboardServiceI interface {
	ListLeaderboard(ctx context.Context) ([]entity.LeaderboardUser, error)
	// Returns the stored entry together with the points-derived actual rank
	GetUserRank(ctx context.Context, userID uuid.UUID) (*entity.LeaderboardStanding, error)
}
