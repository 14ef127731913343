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

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	row := ur.conn.QueryRow(ctx,
		`INSERT INTO users (email, username, password_hash) VALUES ($1, $2, $3) RETURNING id, wallet_balance, created_at, updated_at;`,
		user.Email, user.Username, user.PasswordHash,
	)
	if err := row.Scan(&user.ID, &user.WalletBalance, &user.CreatedAt, &user.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Unique violation: tell email and username collisions apart
			if pgErr.ConstraintName == "users_username_key" {
				return errorvalues.ErrUsernameTaken
			}
			return errorvalues.ErrEmailTaken
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByEmailOrUsername(ctx context.Context, login string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx,
		`SELECT id, email, username, password_hash, wallet_balance, created_at, updated_at FROM users WHERE email = $1 OR username = $1;`,
		login,
	)
	if err := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.WalletBalance, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by login error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx,
		`SELECT id, email, username, password_hash, wallet_balance, created_at, updated_at FROM users WHERE id = $1;`,
		uid,
	)
	if err := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.WalletBalance, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) GetBalance(ctx context.Context, uid uuid.UUID) (int64, error) {
	var balance int64
	row := ur.conn.QueryRow(ctx, `SELECT wallet_balance FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("getting balance error: " + err.Error())
	}
	return balance, nil
}
