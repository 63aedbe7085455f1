package utils

import (
	"testing"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:      "test-secret",
		JWTIssuer:         "todak_test",
		JWTExpirationTime: time.Hour,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	tokenString, err := GenerateToken(cfg, 42, "mourner")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ValidateToken(cfg, tokenString)
	require.NoError(t, err)

	claims, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims["user_id"])
	assert.Equal(t, "mourner", claims["username"])
	assert.Equal(t, "todak_test", claims["iss"])
	assert.NotNil(t, claims["jti"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()
	tokenString, err := GenerateToken(cfg, 1, "u")
	require.NoError(t, err)

	other := testConfig()
	other.JWTSecretKey = "different-secret"
	_, err = ValidateToken(other, tokenString)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpirationTime = -time.Minute

	tokenString, err := GenerateToken(cfg, 1, "u")
	require.NoError(t, err)

	_, err = ValidateToken(cfg, tokenString)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken(testConfig(), "not.a.token")
	assert.Error(t, err)
}

func TestBlacklistWithoutRedisIsNoop(t *testing.T) {
	RedisClient = nil

	tokenString, err := GenerateToken(testConfig(), 1, "u")
	require.NoError(t, err)

	blacklisted, err := IsTokenBlacklisted(tokenString)
	require.NoError(t, err)
	assert.False(t, blacklisted)

	assert.NoError(t, AddTokenToBlacklist(tokenString, time.Minute))
}

func TestGetTokenHash(t *testing.T) {
	assert.Equal(t, "empty", GetTokenHash(""))
	assert.Len(t, GetTokenHash("abc"), 16)
	assert.Equal(t, GetTokenHash("abc"), GetTokenHash("abc"))
	assert.NotEqual(t, GetTokenHash("abc"), GetTokenHash("abd"))
}
