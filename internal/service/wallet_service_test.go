package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository/mocks"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestGetBalance(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	transactionsRepo := mocks.NewMockTransactionsRepositoryI(ctrl)

	serv := service.NewWalletService(usersRepo, transactionsRepo)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		usersRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(2500), nil)
		balance, err := serv.GetBalance(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, int64(2500), balance)
	})
	t.Run("error unexist user", func(t *testing.T) {
		usersRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(0), errorvalues.ErrUserNotFound)
		_, err := serv.GetBalance(context.Background(), userID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestDeposit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	transactionsRepo := mocks.NewMockTransactionsRepositoryI(ctrl)

	serv := service.NewWalletService(usersRepo, transactionsRepo)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		transactionsRepo.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *entity.Transaction) (int64, error) {
				assert.Equal(t, userID, tx.UserID)
				assert.Equal(t, int64(5000), tx.Amount)
				assert.Equal(t, service.TransactionTypeDeposit, tx.Type)
				assert.Nil(t, tx.ChallengeID)
				return 5000, nil
			})
		balance, err := serv.Deposit(context.Background(), userID, 5000, "top up")
		assert.NoError(t, err)
		assert.Equal(t, int64(5000), balance)
	})
	t.Run("error zero amount", func(t *testing.T) {
		_, err := serv.Deposit(context.Background(), userID, 0, "nothing")
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("error negative amount", func(t *testing.T) {
		_, err := serv.Deposit(context.Background(), userID, -100, "sneaky debit")
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestApplyTransaction(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	transactionsRepo := mocks.NewMockTransactionsRepositoryI(ctrl)

	serv := service.NewWalletService(usersRepo, transactionsRepo)
	userID := uuid.New()
	challengeID := uuid.New()

	t.Run("debit applied", func(t *testing.T) {
		transactionsRepo.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *entity.Transaction) (int64, error) {
				assert.Equal(t, int64(-1000), tx.Amount)
				assert.Equal(t, &challengeID, tx.ChallengeID)
				return 4000, nil
			})
		balance, err := serv.ApplyTransaction(context.Background(), userID, -1000, "ENTRY_FEE", "challenge entry", &challengeID)
		assert.NoError(t, err)
		assert.Equal(t, int64(4000), balance)
	})
	t.Run("error insufficient funds", func(t *testing.T) {
		transactionsRepo.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(int64(0), errorvalues.ErrInsufficientFunds)
		_, err := serv.ApplyTransaction(context.Background(), userID, -1000, "ENTRY_FEE", "challenge entry", &challengeID)
		assert.ErrorIs(t, err, errorvalues.ErrInsufficientFunds)
	})
	t.Run("error unexist user", func(t *testing.T) {
		transactionsRepo.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(int64(0), errorvalues.ErrUserNotFound)
		_, err := serv.ApplyTransaction(context.Background(), userID, 100, "DEPOSIT", "", nil)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestGetTransactionHistory(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	transactionsRepo := mocks.NewMockTransactionsRepositoryI(ctrl)

	serv := service.NewWalletService(usersRepo, transactionsRepo)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		transactionsRepo.EXPECT().ListByUser(gomock.Any(), userID).Return([]entity.Transaction{
			{ID: uuid.New(), UserID: userID, Amount: -1000, Type: "ENTRY_FEE"},
			{ID: uuid.New(), UserID: userID, Amount: 5000, Type: "DEPOSIT"},
		}, nil)
		transactions, err := serv.GetTransactionHistory(context.Background(), userID)
		assert.NoError(t, err)
		assert.Len(t, transactions, 2)
	})
}
