package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karate_coaching_backend/internals/configs"
)

func TestCreateAndParseAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	configs.TokenExpiry = 5 * time.Hour

	userID := uuid.New()
	token, err := CreateAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestCreateAccessToken_Claims(t *testing.T) {
	configs.JWTSecret = "test-secret"
	configs.TokenExpiry = 5 * time.Hour

	userID := uuid.New()
	signed, err := CreateAccessToken(userID)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)

	assert.Equal(t, userID.String(), claims["sub"])
	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64((5 * time.Hour).Seconds()), exp-iat)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	configs.JWTSecret = "secret-a"
	configs.TokenExpiry = time.Hour
	token, err := CreateAccessToken(uuid.New())
	require.NoError(t, err)

	configs.JWTSecret = "secret-b"
	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}

func TestParseAccessToken_Expired(t *testing.T) {
	configs.JWTSecret = "test-secret"
	configs.TokenExpiry = -time.Minute

	token, err := CreateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}
