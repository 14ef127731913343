package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestEnsureEntry(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewLeaderboardRepoWithConn(conn)
	userID := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO leaderboard_users (user_id, display_name, rank)
		SELECT $1, $2, COALESCE(MAX(rank), 0) + 1 FROM leaderboard_users
		ON CONFLICT (user_id) DO NOTHING;`)
	t.Run("created", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(userID, "alice").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.EnsureEntry(ctx, userID, "alice")
		assert.NoError(t, err)
	})
	t.Run("already exists is a no-op", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(userID, "alice").
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		err := repo.EnsureEntry(ctx, userID, "alice")
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(userID, "alice").
			WillReturnError(errors.New("db error"))
		err := repo.EnsureEntry(ctx, userID, "alice")
		assert.Error(t, err)
	})
}

func TestListLeaderboard(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewLeaderboardRepoWithConn(conn)
	query := regexp.QuoteMeta(`SELECT id, user_id, display_name, avatar_url, points, rank FROM leaderboard_users ORDER BY rank;`)
	cols := []string{"id", "user_id", "display_name", "avatar_url", "points", "rank"}
	t.Run("ordered by stored rank", func(t *testing.T) {
		conn.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(uuid.New(), uuid.New(), "alice", "", 300, 1).
				AddRow(uuid.New(), uuid.New(), "bob", "", 500, 2))
		entries, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		// Stored rank wins here even though bob has more points; the
		// column is only refreshed by the external recompute job
		assert.Equal(t, "alice", entries[0].DisplayName)
		assert.Equal(t, 1, entries[0].Rank)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx)
		assert.Error(t, err)
	})
}

func TestGetEntryByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewLeaderboardRepoWithConn(conn)
	entry := entity.LeaderboardUser{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		DisplayName: "alice",
		Points:      250,
		Rank:        4,
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, display_name, avatar_url, points, rank FROM leaderboard_users WHERE user_id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entry.UserID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "display_name", "avatar_url", "points", "rank"}).
				AddRow(entry.ID, entry.UserID, entry.DisplayName, entry.AvatarURL, entry.Points, entry.Rank))
		result, err := repo.GetByUserID(ctx, entry.UserID)
		assert.NoError(t, err)
		assert.Equal(t, entry, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entry.UserID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByUserID(ctx, entry.UserID)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
}

func TestCountHigherPoints(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewLeaderboardRepoWithConn(conn)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM leaderboard_users WHERE points > $1;`)
	t.Run("counted", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(250).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
		count, err := repo.CountHigherPoints(ctx, 250)
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(250).
			WillReturnError(errors.New("db error"))
		_, err := repo.CountHigherPoints(ctx, 250)
		assert.Error(t, err)
	})
}
