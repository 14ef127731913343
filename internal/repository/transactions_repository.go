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

type TransactionsRepository struct {
	conn PgConnection
}

func NewTransactionsRepo(cfg DBConfig) *TransactionsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for transactionsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for transactionsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TransactionsRepository{
		conn: pool,
	}
}

func NewTransactionsRepoWithConn(conn PgConnection) *TransactionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for transactionsRepo: " + err.Error())
	}
	return &TransactionsRepository{
		conn: conn,
	}
}

// Apply runs the balance check, the balance update and the ledger insert in
// one database transaction. The FOR UPDATE row lock serializes concurrent
// mutations of the same wallet: two competing debits cannot both read the
// same stale balance. Returns the balance after commit.
func (tr *TransactionsRepository) Apply(ctx context.Context, t *entity.Transaction) (int64, error) {
	if t == nil {
		return 0, errors.New("transaction is nil")
	}
	tx, err := tr.conn.Begin(ctx)
	if err != nil {
		return 0, errors.New("beginning wallet tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var balance int64
	row := tx.QueryRow(ctx, `SELECT wallet_balance FROM users WHERE id = $1 FOR UPDATE;`, t.UserID)
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("reading balance error: " + err.Error())
	}
	if t.Amount < 0 && balance+t.Amount < 0 {
		return 0, errorvalues.ErrInsufficientFunds
	}
	newBalance := balance + t.Amount
	_, err = tx.Exec(ctx, `UPDATE users SET wallet_balance = $1, updated_at = NOW() WHERE id = $2;`, newBalance, t.UserID)
	if err != nil {
		return 0, errors.New("updating balance error: " + err.Error())
	}
	row = tx.QueryRow(ctx,
		`INSERT INTO transactions (user_id, amount, type, description, challenge_id) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		t.UserID, t.Amount, t.Type, t.Description, t.ChallengeID,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return 0, errors.New("appending ledger row error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, errors.New("committing wallet tx error: " + err.Error())
	}
	return newBalance, nil
}

func (tr *TransactionsRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Transaction, error) {
	rows, err := tr.conn.Query(ctx,
		`SELECT id, user_id, amount, type, description, challenge_id, created_at
		FROM transactions WHERE user_id = $1 ORDER BY created_at DESC;`, userID)
	if err != nil {
		return nil, errors.New("listing transactions error: " + err.Error())
	}
	defer rows.Close()
	transactions := make([]entity.Transaction, 0)
	for rows.Next() {
		t := entity.Transaction{}
		err = rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Description, &t.ChallengeID, &t.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling transaction error: " + err.Error())
		}
		transactions = append(transactions, t)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return transactions, nil
}
