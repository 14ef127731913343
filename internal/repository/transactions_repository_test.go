package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var (
	selectBalanceForUpdate = regexp.QuoteMeta(`SELECT wallet_balance FROM users WHERE id = $1 FOR UPDATE;`)
	updateBalance          = regexp.QuoteMeta(`UPDATE users SET wallet_balance = $1, updated_at = NOW() WHERE id = $2;`)
	insertLedgerRow        = regexp.QuoteMeta(`INSERT INTO transactions (user_id, amount, type, description, challenge_id) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`)
)

func TestApplyTransaction(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewTransactionsRepoWithConn(conn)
	userID := uuid.New()

	t.Run("credit applied", func(t *testing.T) {
		tx := entity.Transaction{
			UserID:      userID,
			Amount:      1000,
			Type:        "DEPOSIT",
			Description: "top up",
		}
		conn.ExpectBegin()
		conn.ExpectQuery(selectBalanceForUpdate).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"wallet_balance"}).AddRow(int64(500)))
		conn.ExpectExec(updateBalance).
			WithArgs(int64(1500), userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectQuery(insertLedgerRow).
			WithArgs(userID, int64(1000), "DEPOSIT", "top up", (*uuid.UUID)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), time.Now()))
		conn.ExpectCommit()
		balance, err := repo.Apply(ctx, &tx)
		assert.NoError(t, err)
		assert.Equal(t, int64(1500), balance)
		assert.NotEqual(t, uuid.UUID{}, tx.ID)
	})

	t.Run("debit within balance", func(t *testing.T) {
		tx := entity.Transaction{
			UserID:      userID,
			Amount:      -300,
			Type:        "ENTRY_FEE",
			Description: "challenge entry",
		}
		conn.ExpectBegin()
		conn.ExpectQuery(selectBalanceForUpdate).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"wallet_balance"}).AddRow(int64(500)))
		conn.ExpectExec(updateBalance).
			WithArgs(int64(200), userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectQuery(insertLedgerRow).
			WithArgs(userID, int64(-300), "ENTRY_FEE", "challenge entry", (*uuid.UUID)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), time.Now()))
		conn.ExpectCommit()
		balance, err := repo.Apply(ctx, &tx)
		assert.NoError(t, err)
		assert.Equal(t, int64(200), balance)
	})

	t.Run("debit over balance rejected before any write", func(t *testing.T) {
		tx := entity.Transaction{
			UserID: userID,
			Amount: -501,
			Type:   "ENTRY_FEE",
		}
		conn.ExpectBegin()
		conn.ExpectQuery(selectBalanceForUpdate).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"wallet_balance"}).AddRow(int64(500)))
		conn.ExpectRollback()
		_, err := repo.Apply(ctx, &tx)
		assert.ErrorIs(t, err, errorvalues.ErrInsufficientFunds)
	})

	t.Run("unknown user", func(t *testing.T) {
		tx := entity.Transaction{
			UserID: userID,
			Amount: 100,
			Type:   "DEPOSIT",
		}
		conn.ExpectBegin()
		conn.ExpectQuery(selectBalanceForUpdate).
			WithArgs(userID).
			WillReturnError(errors.New("no rows in result set"))
		conn.ExpectRollback()
		_, err := repo.Apply(ctx, &tx)
		assert.Error(t, err)
	})

	t.Run("ledger insert failure aborts the whole mutation", func(t *testing.T) {
		tx := entity.Transaction{
			UserID: userID,
			Amount: 100,
			Type:   "DEPOSIT",
		}
		conn.ExpectBegin()
		conn.ExpectQuery(selectBalanceForUpdate).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"wallet_balance"}).AddRow(int64(0)))
		conn.ExpectExec(updateBalance).
			WithArgs(int64(100), userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectQuery(insertLedgerRow).
			WithArgs(userID, int64(100), "DEPOSIT", "", (*uuid.UUID)(nil)).
			WillReturnError(errors.New("db error"))
		conn.ExpectRollback()
		_, err := repo.Apply(ctx, &tx)
		assert.Error(t, err)
	})
}

func TestListTransactionsByUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewTransactionsRepoWithConn(conn)
	userID := uuid.New()
	query := regexp.QuoteMeta(`SELECT id, user_id, amount, type, description, challenge_id, created_at
		FROM transactions WHERE user_id = $1 ORDER BY created_at DESC;`)
	cols := []string{"id", "user_id", "amount", "type", "description", "challenge_id", "created_at"}
	t.Run("listed newest first", func(t *testing.T) {
		newer := time.Now()
		older := newer.Add(-time.Hour)
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(uuid.New(), userID, int64(-1000), "ENTRY_FEE", "joined challenge", (*uuid.UUID)(nil), newer).
				AddRow(uuid.New(), userID, int64(5000), "DEPOSIT", "top up", (*uuid.UUID)(nil), older))
		transactions, err := repo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, transactions, 2)
		assert.True(t, transactions[0].CreatedAt.After(transactions[1].CreatedAt))
	})
	t.Run("empty history", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(cols))
		transactions, err := repo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, transactions)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByUser(ctx, userID)
		assert.Error(t, err)
	})
}
