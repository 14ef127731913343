package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/entity"
)

const TransactionTypeDeposit = "DEPOSIT"

type WalletService struct {
	usersRepo        repository.UsersRepositoryI
	transactionsRepo repository.TransactionsRepositoryI
}

func NewWalletService(usersRepo repository.UsersRepositoryI, transactionsRepo repository.TransactionsRepositoryI) *WalletService {
	if usersRepo == nil || transactionsRepo == nil {
		log.Fatal("on wallet service provided nil repos")
	}
	return &WalletService{
		usersRepo:        usersRepo,
		transactionsRepo: transactionsRepo,
	}
}

func (ws *WalletService) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	balance, err := ws.usersRepo.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("users repository error: " + err.Error())
	}
	return balance, nil
}

func (ws *WalletService) GetTransactionHistory(ctx context.Context, userID uuid.UUID) ([]entity.Transaction, error) {
	transactions, err := ws.transactionsRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.New("transactions repository error: " + err.Error())
	}
	return transactions, nil
}

func (ws *WalletService) Deposit(ctx context.Context, userID uuid.UUID, amount int64, description string) (int64, error) {
	if amount <= 0 {
		return 0, errorvalues.ErrValidation
	}
	return ws.ApplyTransaction(ctx, userID, amount, TransactionTypeDeposit, description, nil)
}

// ApplyTransaction is the single mutation path for wallet balances. The
// repository runs the balance check, update and ledger insert in one
// database transaction, so either both writes land or neither does.
func (ws *WalletService) ApplyTransaction(ctx context.Context, userID uuid.UUID, amount int64, txType, description string, challengeID *uuid.UUID) (int64, error) {
	t := entity.Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Description: description,
		ChallengeID: challengeID,
	}
	balance, err := ws.transactionsRepo.Apply(ctx, &t)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInsufficientFunds), errors.Is(err, errorvalues.ErrUserNotFound):
			return 0, err
		}
		return 0, errors.New("transactions repository error: " + err.Error())
	}
	return balance, nil
}
