package auth

import (
	"testing"
	"time"

	"github.com/flexo/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "flexo-test",
	})
}

func newTestInput() GenerateTokenInput {
	return GenerateTokenInput{
		UserID:        uuid.New(),
		Name:          "Operadora",
		Email:         "operadora@flexo.com.br",
		Role:          "operator",
		AllowedRoutes: []string{"/serviceorder", "/customer"},
	}
}

func TestNewJWTService_UsesSecretForRefreshIfNotProvided(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})
	assert.Equal(t, []byte("test-secret"), svc.refresh.secret)
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(newTestInput())

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))
}

func TestGenerateTokenPair_IssuedAtMillis(t *testing.T) {
	svc := newTestJWTService()
	issued := time.Now().Truncate(time.Second).Add(640 * time.Millisecond)
	svc.now = func() time.Time { return issued }

	pair, err := svc.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	access, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, issued.UnixMilli(), access.IssuedAtMs)
	assert.Equal(t, issued.UnixMilli(), access.IssuedAtTime().UnixMilli())

	refresh, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, issued.UnixMilli(), refresh.IssuedAtMs)
}

func TestGenerateTokenPair_RequiresUser(t *testing.T) {
	_, err := newTestJWTService().GenerateTokenPair(GenerateTokenInput{})
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestValidateAccessToken(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()
	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)

	require.NoError(t, err)
	assert.Equal(t, input.UserID.String(), claims.UserID)
	assert.Equal(t, "operator", claims.Role)
	assert.Equal(t, input.AllowedRoutes, claims.AllowedRoutes)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)

	id, err := claims.UserUUID()
	require.NoError(t, err)
	assert.Equal(t, input.UserID, id)
	assert.Greater(t, claims.RemainingTTL(), 14*time.Minute)
}

func TestValidateToken_Failures(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken, "signed with the refresh secret")
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		same := NewJWTService(config.JWTConfig{Secret: "shared", AccessTokenExpiration: time.Minute, RefreshTokenExpiration: time.Hour, Issuer: "flexo-test"})
		p, err := same.GenerateTokenPair(newTestInput())
		require.NoError(t, err)
		_, err = same.ValidateRefreshToken(p.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(pair.AccessToken + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
		old, err := svc.GenerateTokenPair(newTestInput())
		svc.now = time.Now
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(old.AccessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{Secret: "test-secret-key-at-least-32-chars", AccessTokenExpiration: time.Minute, Issuer: "someone-else"})
		p, err := other.GenerateTokenPair(newTestInput())
		require.NoError(t, err)
		_, err = svc.ValidateAccessToken(p.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.NewString(), TokenType: TokenTypeAccess})
		s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ValidateAccessToken(s)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
