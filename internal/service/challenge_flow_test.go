package service_test

import (
	"context"
	"testing"
	"time"

	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengeFlowIntegrational(t *testing.T) {
	dbCfg := setupTestDB(t)
	usersRepo := repository.NewUsersRepo(dbCfg)
	leaderboardRepo := repository.NewLeaderboardRepo(dbCfg)
	challengesRepo := repository.NewChallengesRepo(dbCfg)
	participationsRepo := repository.NewParticipationsRepo(dbCfg)
	us := service.NewUserService(usersRepo, leaderboardRepo)
	cs := service.NewChallengeService(challengesRepo, participationsRepo)
	ctx := context.Background()

	creator, err := us.Signup(ctx, &service.SignupRequest{
		Email:    "creator@x.com",
		Username: "creator",
		Password: "password1",
	})
	require.NoError(t, err)
	member, err := us.Signup(ctx, &service.SignupRequest{
		Email:    "member@x.com",
		Username: "member",
		Password: "password1",
	})
	require.NoError(t, err)

	now := time.Now()
	challenge, err := cs.CreateChallenge(ctx, creator.ID, &service.CreateChallengeRequest{
		Title:       "10k steps",
		Description: "walk every day",
		StartDate:   now.Add(time.Hour),
		EndDate:     now.Add(7 * 24 * time.Hour),
		GoalType:    entity.GoalSteps,
		GoalTarget:  10000,
		EntryFee:    500,
	})
	require.NoError(t, err)
	assert.True(t, challenge.IsPublic)

	t.Run("join before start", func(t *testing.T) {
		p, err := cs.JoinChallenge(ctx, challenge.ID, member.ID)
		assert.NoError(t, err)
		assert.False(t, p.HasPaid)
	})
	t.Run("error join twice", func(t *testing.T) {
		_, err := cs.JoinChallenge(ctx, challenge.ID, member.ID)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyJoined)
	})
	t.Run("error progress before payment", func(t *testing.T) {
		_, err := cs.RecordProgress(ctx, challenge.ID, member.ID, &service.RecordProgressRequest{
			Date:  now.Add(2 * time.Hour),
			Value: 4200,
		})
		assert.ErrorIs(t, err, errorvalues.ErrPaymentRequired)
	})
	t.Run("mark payment once", func(t *testing.T) {
		p, err := cs.MarkPayment(ctx, challenge.ID, member.ID)
		assert.NoError(t, err)
		assert.True(t, p.HasPaid)

		_, err = cs.MarkPayment(ctx, challenge.ID, member.ID)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyPaid)
	})
	t.Run("error progress out of range", func(t *testing.T) {
		_, err := cs.RecordProgress(ctx, challenge.ID, member.ID, &service.RecordProgressRequest{
			Date:  now.Add(30 * 24 * time.Hour),
			Value: 100,
		})
		assert.ErrorIs(t, err, errorvalues.ErrDateOutOfRange)
	})
	t.Run("same day progress is overwritten, not duplicated", func(t *testing.T) {
		// two timestamps on the same UTC day, safely inside the challenge window
		day := now.UTC().Truncate(24 * time.Hour).Add(48 * time.Hour)
		first, err := cs.RecordProgress(ctx, challenge.ID, member.ID, &service.RecordProgressRequest{
			Date:  day.Add(10 * time.Hour),
			Value: 4200,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.SourceManual, first.Source)

		second, err := cs.RecordProgress(ctx, challenge.ID, member.ID, &service.RecordProgressRequest{
			Date:   day.Add(11 * time.Hour),
			Value:  9000,
			Source: entity.SourceAppleHealth,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		detail, err := cs.GetChallenge(ctx, challenge.ID, member.ID)
		require.NoError(t, err)
		require.Len(t, detail.Participants, 1)
		require.Len(t, detail.Participants[0].Progress, 1)
		assert.Equal(t, 9000, detail.Participants[0].Progress[0].Value)
		assert.Equal(t, entity.SourceAppleHealth, detail.Participants[0].Progress[0].Source)
	})
	t.Run("error join started challenge", func(t *testing.T) {
		started, err := cs.CreateChallenge(ctx, creator.ID, &service.CreateChallengeRequest{
			Title:       "already running",
			Description: "started yesterday",
			StartDate:   now.Add(-24 * time.Hour),
			EndDate:     now.Add(24 * time.Hour),
			GoalType:    entity.GoalCustom,
			GoalTarget:  1,
		})
		require.NoError(t, err)
		_, err = cs.JoinChallenge(ctx, started.ID, member.ID)
		assert.ErrorIs(t, err, errorvalues.ErrChallengeStarted)
	})
	t.Run("private challenge hidden from outsiders", func(t *testing.T) {
		private := false
		hidden, err := cs.CreateChallenge(ctx, creator.ID, &service.CreateChallengeRequest{
			Title:       "inner circle",
			Description: "invite only",
			StartDate:   now.Add(time.Hour),
			EndDate:     now.Add(48 * time.Hour),
			GoalType:    entity.GoalMeditation,
			GoalTarget:  30,
			IsPublic:    &private,
		})
		require.NoError(t, err)

		_, err = cs.GetChallenge(ctx, hidden.ID, member.ID)
		assert.ErrorIs(t, err, errorvalues.ErrPrivateChallenge)

		_, err = cs.GetChallenge(ctx, hidden.ID, creator.ID)
		assert.NoError(t, err)

		visible, err := cs.ListChallenges(ctx, member.ID)
		require.NoError(t, err)
		for _, c := range visible {
			assert.NotEqual(t, hidden.ID, c.ID)
		}
	})
	t.Run("list carries participant count and creator", func(t *testing.T) {
		visible, err := cs.ListChallenges(ctx, member.ID)
		require.NoError(t, err)
		var found bool
		for _, c := range visible {
			if c.ID == challenge.ID {
				found = true
				assert.Equal(t, 1, c.ParticipantCount)
				assert.Equal(t, "creator", c.Creator.Username)
			}
		}
		assert.True(t, found)
	})
}
