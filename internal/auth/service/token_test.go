package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenGenerator(t *testing.T) {
	tg := NewTokenGenerator("test-secret-key", time.Hour, 7*24*time.Hour)

	assert.NotNil(t, tg)
	assert.Equal(t, "test-secret-key", tg.secret)
	assert.Equal(t, time.Hour, tg.accessTokenExpiry)
	assert.Equal(t, 7*24*time.Hour, tg.refreshTokenExpiry)
}

func TestTokenGenerator_GenerateAndValidate(t *testing.T) {
	tg := NewTokenGenerator("b8a3c2267dc85f855dea9b46b452bf20", time.Hour, 7*24*time.Hour)

	accessToken, refreshToken, err := tg.GenerateTokens(42, 2)
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	userID, role, err := tg.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
	assert.Equal(t, 2, role)

	refreshUserID, err := tg.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, 42, refreshUserID)
}

func TestTokenGenerator_ValidateAccessToken(t *testing.T) {
	secret := "b8a3c2267dc85f855dea9b46b452bf20"
	tg := NewTokenGenerator(secret, time.Hour, time.Hour)
	_, refreshToken, err := tg.GenerateTokens(1, 1)
	require.NoError(t, err)

	sign := func(claims jwt.MapClaims, key string) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "refresh token used as access", token: refreshToken},
		{name: "wrong secret", token: sign(jwt.MapClaims{"user_id": 1, "role": 1, "type": "access", "exp": time.Now().Add(time.Hour).Unix()}, "other")},
		{name: "expired", token: sign(jwt.MapClaims{"user_id": 1, "role": 1, "type": "access", "exp": time.Now().Add(-time.Hour).Unix()}, secret)},
		{name: "missing role", token: sign(jwt.MapClaims{"user_id": 1, "type": "access", "exp": time.Now().Add(time.Hour).Unix()}, secret)},
		{name: "missing user id", token: sign(jwt.MapClaims{"role": 1, "type": "access", "exp": time.Now().Add(time.Hour).Unix()}, secret)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tg.ValidateAccessToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestTokenGenerator_TokenExpiry(t *testing.T) {
	tg := NewTokenGenerator("secret", -time.Minute, time.Hour)

	accessToken, _, err := tg.GenerateTokens(1, 1)
	require.NoError(t, err)

	_, _, err = tg.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}
