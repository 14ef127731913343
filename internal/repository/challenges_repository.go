package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/cleanup"
	"github.com/limbo/accountability/pkg/entity"
)

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChallengesRepository{
		conn: pool,
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error) {
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx,
		`INSERT INTO challenges (title, description, start_date, end_date, goal_type, goal_target, entry_fee, is_public, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		challenge.Title,
		challenge.Description,
		challenge.StartDate,
		challenge.EndDate,
		challenge.GoalType,
		challenge.GoalTarget,
		challenge.EntryFee,
		challenge.IsPublic,
		challenge.CreatorID,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation: creator disappeared
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			// Check violation: start >= end or negative fee
			case "23514":
				return uuid.UUID{}, errorvalues.ErrValidation
			}
		}
		return uuid.UUID{}, errors.New("creating challenge db error: " + err.Error())
	}
	return id, nil
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var c entity.Challenge
	c.ID = id
	row := cr.conn.QueryRow(ctx,
		`SELECT title, description, start_date, end_date, goal_type, goal_target, entry_fee, is_public, creator_id, created_at, updated_at
		FROM challenges WHERE id = $1;`, id)
	err := row.Scan(&c.Title, &c.Description, &c.StartDate, &c.EndDate, &c.GoalType, &c.GoalTarget, &c.EntryFee, &c.IsPublic, &c.CreatorID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	return &c, nil
}

func (cr *ChallengesRepository) ListVisible(ctx context.Context, uid uuid.UUID) ([]*entity.ChallengeSummary, error) {
	challenges := make([]*entity.ChallengeSummary, 0)
	rows, err := cr.conn.Query(ctx,
		`SELECT c.id, c.title, c.description, c.start_date, c.end_date, c.goal_type, c.goal_target, c.entry_fee, c.is_public, c.creator_id, c.created_at, c.updated_at,
			COUNT(p.id), u.username, COALESCE(l.avatar_url, '')
		FROM challenges c
		JOIN users u ON u.id = c.creator_id
		LEFT JOIN leaderboard_users l ON l.user_id = c.creator_id
		LEFT JOIN participations p ON p.challenge_id = c.id
		WHERE c.is_public = TRUE OR c.creator_id = $1
		GROUP BY c.id, u.username, l.avatar_url
		ORDER BY c.start_date;`, uid)
	if err != nil {
		return nil, errors.New("listing challenges error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		s := entity.ChallengeSummary{}
		err = rows.Scan(&s.ID, &s.Title, &s.Description, &s.StartDate, &s.EndDate, &s.GoalType, &s.GoalTarget, &s.EntryFee, &s.IsPublic, &s.CreatorID, &s.CreatedAt, &s.UpdatedAt,
			&s.ParticipantCount, &s.Creator.Username, &s.Creator.AvatarURL)
		if err != nil {
			return nil, errors.New("unmarshalling challenge summary error: " + err.Error())
		}
		s.Creator.ID = s.CreatorID
		challenges = append(challenges, &s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return challenges, nil
}
