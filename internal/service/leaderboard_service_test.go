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

func TestListLeaderboard(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLeaderboardRepositoryI(ctrl)

	serv := service.NewLeaderboardService(repo)

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return([]entity.LeaderboardUser{
			{ID: uuid.New(), DisplayName: "alice", Points: 300, Rank: 1},
			{ID: uuid.New(), DisplayName: "bob", Points: 200, Rank: 2},
		}, nil)
		entries, err := serv.ListLeaderboard(context.Background())
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestGetUserRank(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLeaderboardRepositoryI(ctrl)

	serv := service.NewLeaderboardService(repo)
	userID := uuid.New()

	t.Run("top scorer gets actual rank 1", func(t *testing.T) {
		repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&entity.LeaderboardUser{
			ID:     uuid.New(),
			UserID: userID,
			Points: 900,
			Rank:   5,
		}, nil)
		repo.EXPECT().CountHigherPoints(gomock.Any(), 900).Return(0, nil)
		standing, err := serv.GetUserRank(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, 1, standing.ActualRank)
		// The stored rank column is allowed to disagree and stays untouched
		assert.Equal(t, 5, standing.Rank)
	})
	t.Run("k-1 higher scorers mean actual rank k", func(t *testing.T) {
		repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&entity.LeaderboardUser{
			ID:     uuid.New(),
			UserID: userID,
			Points: 250,
			Rank:   2,
		}, nil)
		repo.EXPECT().CountHigherPoints(gomock.Any(), 250).Return(6, nil)
		standing, err := serv.GetUserRank(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, 7, standing.ActualRank)
	})
	t.Run("error unexist entry", func(t *testing.T) {
		repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, errorvalues.ErrEntryNotFound)
		_, err := serv.GetUserRank(context.Background(), userID)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
}
