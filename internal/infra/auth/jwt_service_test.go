package auth

import (
	"testing"
	"time"

	"sheshape/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signTestToken(t *testing.T, secret string, method jwt.SigningMethod) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	}

	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	tokenString := signTestToken(t, testAccessSecret, jwt.SigningMethodHS256)

	token, err := jwtService.ValidateToken(tokenString, testAccessSecret)
	require.NoError(t, err)
	assert.True(t, token.Valid)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	tokenString := signTestToken(t, "some_other_secret", jwt.SigningMethodHS256)

	_, err = jwtService.ValidateToken(tokenString, testAccessSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_NotAToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format", testAccessSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Add(-time.Hour).Unix(),
		"exp": time.Now().Add(-30 * time.Minute).Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(tokenString, testAccessSecret)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
