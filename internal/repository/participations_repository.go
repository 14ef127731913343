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

type ParticipationsRepository struct {
	conn PgConnection
}

func NewParticipationsRepo(cfg DBConfig) *ParticipationsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for participationsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for participationsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ParticipationsRepository{
		conn: pool,
	}
}

func NewParticipationsRepoWithConn(conn PgConnection) *ParticipationsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for participationsRepo: " + err.Error())
	}
	return &ParticipationsRepository{
		conn: conn,
	}
}

func (pr *ParticipationsRepository) Create(ctx context.Context, userID, challengeID uuid.UUID) (*entity.Participation, error) {
	p := entity.Participation{
		UserID:      userID,
		ChallengeID: challengeID,
	}
	row := pr.conn.QueryRow(ctx,
		`INSERT INTO participations (user_id, challenge_id) VALUES ($1, $2) RETURNING id, has_paid, joined_at;`,
		userID, challengeID,
	)
	if err := row.Scan(&p.ID, &p.HasPaid, &p.JoinedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return nil, errorvalues.ErrAlreadyJoined
			// FK violation
			case "23503":
				return nil, errorvalues.ErrChallengeNotFound
			}
		}
		return nil, errors.New("creating participation error: " + err.Error())
	}
	return &p, nil
}

func (pr *ParticipationsRepository) GetByUserAndChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*entity.Participation, error) {
	var p entity.Participation
	row := pr.conn.QueryRow(ctx,
		`SELECT id, user_id, challenge_id, has_paid, completed, joined_at FROM participations WHERE user_id = $1 AND challenge_id = $2;`,
		userID, challengeID,
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.ChallengeID, &p.HasPaid, &p.Completed, &p.JoinedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrParticipationNotFound
		}
		return nil, errors.New("searching participation error: " + err.Error())
	}
	return &p, nil
}

func (pr *ParticipationsRepository) ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]entity.ParticipantDetail, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT p.id, p.user_id, p.challenge_id, p.has_paid, p.completed, p.joined_at, u.username
		FROM participations p JOIN users u ON u.id = p.user_id
		WHERE p.challenge_id = $1 ORDER BY p.joined_at;`, challengeID)
	if err != nil {
		return nil, errors.New("listing participants error: " + err.Error())
	}
	defer rows.Close()
	participants := make([]entity.ParticipantDetail, 0)
	for rows.Next() {
		d := entity.ParticipantDetail{}
		err = rows.Scan(&d.ID, &d.UserID, &d.ChallengeID, &d.HasPaid, &d.Completed, &d.JoinedAt, &d.Username)
		if err != nil {
			return nil, errors.New("unmarshalling participant error: " + err.Error())
		}
		participants = append(participants, d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	for i := range participants {
		progress, err := pr.listProgress(ctx, participants[i].ID)
		if err != nil {
			return nil, err
		}
		participants[i].Progress = progress
	}
	return participants, nil
}

func (pr *ParticipationsRepository) listProgress(ctx context.Context, participationID uuid.UUID) ([]entity.ProgressRecord, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT id, participation_id, record_date, value, source, created_at, updated_at
		FROM progress_records WHERE participation_id = $1 ORDER BY record_date;`, participationID)
	if err != nil {
		return nil, errors.New("listing progress error: " + err.Error())
	}
	defer rows.Close()
	records := make([]entity.ProgressRecord, 0)
	for rows.Next() {
		rec := entity.ProgressRecord{}
		err = rows.Scan(&rec.ID, &rec.ParticipationID, &rec.RecordDate, &rec.Value, &rec.Source, &rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling progress record error: " + err.Error())
		}
		records = append(records, rec)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return records, nil
}

func (pr *ParticipationsRepository) MarkPaid(ctx context.Context, participationID uuid.UUID) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE participations SET has_paid = TRUE WHERE id = $1;`, participationID)
	if err != nil {
		return errors.New("marking participation paid error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrParticipationNotFound
	}
	return nil
}

func (pr *ParticipationsRepository) UpsertProgress(ctx context.Context, record *entity.ProgressRecord) (*entity.ProgressRecord, error) {
	rec := *record
	rec.RecordDate = normalizeDate(record.RecordDate)
	row := pr.conn.QueryRow(ctx,
		`INSERT INTO progress_records (participation_id, record_date, value, source) VALUES ($1, $2, $3, $4)
		ON CONFLICT (participation_id, record_date) DO UPDATE SET value = EXCLUDED.value, source = EXCLUDED.source, updated_at = NOW()
		RETURNING id, created_at, updated_at;`,
		rec.ParticipationID, rec.RecordDate, rec.Value, rec.Source,
	)
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, errorvalues.ErrParticipationNotFound
		}
		return nil, errors.New("upserting progress record error: " + err.Error())
	}
	return &rec, nil
}
