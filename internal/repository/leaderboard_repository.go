package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/cleanup"
	"github.com/limbo/accountability/pkg/entity"
)

type LeaderboardRepository struct {
	conn PgConnection
}

func NewLeaderboardRepo(cfg DBConfig) *LeaderboardRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for leaderboardRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for leaderboardRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &LeaderboardRepository{
		conn: pool,
	}
}

func NewLeaderboardRepoWithConn(conn PgConnection) *LeaderboardRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for leaderboardRepo: " + err.Error())
	}
	return &LeaderboardRepository{
		conn: conn,
	}
}

// EnsureEntry appends the user at the tail of the ranking on first sight.
// Repeated calls are no-ops thanks to the user_id unique constraint.
func (lr *LeaderboardRepository) EnsureEntry(ctx context.Context, userID uuid.UUID, displayName string) error {
	_, err := lr.conn.Exec(ctx,
		`INSERT INTO leaderboard_users (user_id, display_name, rank)
		SELECT $1, $2, COALESCE(MAX(rank), 0) + 1 FROM leaderboard_users
		ON CONFLICT (user_id) DO NOTHING;`,
		userID, displayName,
	)
	if err != nil {
		return errors.New("ensuring leaderboard entry error: " + err.Error())
	}
	return nil
}

func (lr *LeaderboardRepository) List(ctx context.Context) ([]entity.LeaderboardUser, error) {
	rows, err := lr.conn.Query(ctx,
		`SELECT id, user_id, display_name, avatar_url, points, rank FROM leaderboard_users ORDER BY rank;`)
	if err != nil {
		return nil, errors.New("listing leaderboard error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.LeaderboardUser, 0)
	for rows.Next() {
		e := entity.LeaderboardUser{}
		err = rows.Scan(&e.ID, &e.UserID, &e.DisplayName, &e.AvatarURL, &e.Points, &e.Rank)
		if err != nil {
			return nil, errors.New("unmarshalling leaderboard entry error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return entries, nil
}

func (lr *LeaderboardRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.LeaderboardUser, error) {
	var e entity.LeaderboardUser
	row := lr.conn.QueryRow(ctx,
		`SELECT id, user_id, display_name, avatar_url, points, rank FROM leaderboard_users WHERE user_id = $1;`, userID)
	if err := row.Scan(&e.ID, &e.UserID, &e.DisplayName, &e.AvatarURL, &e.Points, &e.Rank); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("searching leaderboard entry error: " + err.Error())
	}
	return &e, nil
}

func (lr *LeaderboardRepository) CountHigherPoints(ctx context.Context, points int) (int, error) {
	var count int
	row := lr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM leaderboard_users WHERE points > $1;`, points)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting higher scores error: " + err.Error())
	}
	return count, nil
}
