package jwtservice_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/accountability/pkg/entity"
	jwtservice "github.com/limbo/accountability/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	s := jwtservice.New("secret")
	user := &entity.User{
		ID:    uuid.New(),
		Email: "a@x.com",
	}
	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)

	t.Run("error wrong secret", func(t *testing.T) {
		_, err := jwtservice.New("other_secret").ParseToken(token)
		assert.Error(t, err)
	})
	t.Run("error garbage token", func(t *testing.T) {
		_, err := s.ParseToken("not.a.token")
		assert.Error(t, err)
	})
}
