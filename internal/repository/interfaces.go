package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/accountability/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email OR username in a single query. Used for signin
	FindByEmailOrUsername(ctx context.Context, login string) (*entity.User, error)
	// Looks up user by uid. Used by authorization middleware and getMe
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Returns wallet balance only
	GetBalance(ctx context.Context, uid uuid.UUID) (int64, error)
}

type ChallengesRepositoryI interface {
	// Creates new challenge, returns its generated id
	Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error)
	// Searches challenge with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Lists challenges visible to uid: public ones plus their own private ones,
	// each with participant count and creator summary
	ListVisible(ctx context.Context, uid uuid.UUID) ([]*entity.ChallengeSummary, error)
}

type ParticipationsRepositoryI interface {
	// Enrolls user into challenge with has_paid = false
	Create(ctx context.Context, userID, challengeID uuid.UUID) (*entity.Participation, error)
	// Finds the participation row for (user, challenge)
	GetByUserAndChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*entity.Participation, error)
	// Lists all participants of a challenge with their progress records nested
	ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]entity.ParticipantDetail, error)
	// Flips has_paid to true
	MarkPaid(ctx context.Context, participationID uuid.UUID) error
	// Insert-or-replace keyed by (participation, date). Same day overwrites
	UpsertProgress(ctx context.Context, record *entity.ProgressRecord) (*entity.ProgressRecord, error)
}

type TransactionsRepositoryI interface {
	// Atomically adjusts the user's balance and appends a ledger row.
	// Rejects debits that would take the balance below zero
	Apply(ctx context.Context, tx *entity.Transaction) (int64, error)
	// Returns user's ledger, most recent first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Transaction, error)
}

type LeaderboardRepositoryI interface {
	// Creates an entry for the user at the tail of the ranking if absent
	EnsureEntry(ctx context.Context, userID uuid.UUID, displayName string) error
	// All entries ordered by stored rank ascending
	List(ctx context.Context) ([]entity.LeaderboardUser, error)
	// Entry for a single user
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.LeaderboardUser, error)
	// Count of entries with strictly more points than the user's entry
	CountHigherPoints(ctx context.Context, points int) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

// normalizeDate strips the time-of-day so the (participation, date) key is
// a calendar day regardless of the client's clock.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
