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

type LeaderboardService struct {
	repo repository.LeaderboardRepositoryI
}

func NewLeaderboardService(leaderboardRepo repository.LeaderboardRepositoryI) *LeaderboardService {
	if leaderboardRepo == nil {
		log.Fatal("on leaderboard service provided nil repo")
	}
	return &LeaderboardService{
		repo: leaderboardRepo,
	}
}

func (ls *LeaderboardService) ListLeaderboard(ctx context.Context) ([]entity.LeaderboardUser, error) {
	entries, err := ls.repo.List(ctx)
	if err != nil {
		return nil, errors.New("leaderboard repository error: " + err.Error())
	}
	return entries, nil
}

// GetUserRank derives the rank from points at read time. The stored rank
// column is refreshed by an external job and may disagree with the derived
// value; both are returned as-is.
func (ls *LeaderboardService) GetUserRank(ctx context.Context, userID uuid.UUID) (*entity.LeaderboardStanding, error) {
	entry, err := ls.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("leaderboard repository error: " + err.Error())
	}
	higher, err := ls.repo.CountHigherPoints(ctx, entry.Points)
	if err != nil {
		return nil, errors.New("leaderboard repository error: " + err.Error())
	}
	return &entity.LeaderboardStanding{
		LeaderboardUser: *entry,
		ActualRank:      higher + 1,
	}, nil
}
