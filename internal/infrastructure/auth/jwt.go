// Package auth issues and checks the HS256 tokens of the dashboard and
// keeps the revocation list in Redis.
package auth

import (
	"errors"
	"time"

	"github.com/flexo/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrMissingUserID    = errors.New("missing user_id in claims")
)

// Claims of both token types. Access tokens also carry the role and the
// route prefixes the user may open, so the route guard never queries the
// database. Refresh tokens only name the user.
type Claims struct {
	jwt.RegisteredClaims
	UserID        string    `json:"user_id"`
	Name          string    `json:"name,omitempty"`
	Email         string    `json:"email,omitempty"`
	Role          string    `json:"role,omitempty"`
	AllowedRoutes []string  `json:"allowed_routes,omitempty"`
	TokenType     TokenType `json:"token_type"`

	// IssuedAtMs repeats iat in milliseconds. iat alone cannot order a
	// token against a revocation made earlier in the same second.
	IssuedAtMs int64 `json:"iat_ms,omitempty"`
}

func (c *Claims) UserUUID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// IssuedAtTime is compared with the per-user revocation mark
func (c *Claims) IssuedAtTime() time.Time {
	if c.IssuedAtMs > 0 {
		return time.UnixMilli(c.IssuedAtMs)
	}
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// RemainingTTL is how long a revocation entry for this token must live
func (c *Claims) RemainingTTL() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return max(time.Until(c.ExpiresAt.Time), 0)
}

type TokenPair struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// GenerateTokenInput is the user data embedded in a new access token
type GenerateTokenInput struct {
	UserID        uuid.UUID
	Name          string
	Email         string
	Role          string
	AllowedRoutes []string
}

// JWTService signs access and refresh tokens with separate secrets. The
// refresh secret falls back to the access one when not configured.
type JWTService struct {
	issuer  string
	access  tokenKind
	refresh tokenKind
	now     func() time.Time
}

type tokenKind struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	refreshSecret := cfg.RefreshSecret
	if refreshSecret == "" {
		refreshSecret = cfg.Secret
	}
	return &JWTService{
		issuer:  cfg.Issuer,
		access:  tokenKind{secret: []byte(cfg.Secret), ttl: cfg.AccessTokenExpiration},
		refresh: tokenKind{secret: []byte(refreshSecret), ttl: cfg.RefreshTokenExpiration},
		now:     time.Now,
	}
}

func (s *JWTService) GenerateTokenPair(in GenerateTokenInput) (*TokenPair, error) {
	if in.UserID == uuid.Nil {
		return nil, ErrMissingUserID
	}
	now := s.now()
	pair := &TokenPair{
		AccessTokenExpiresAt:  now.Add(s.access.ttl),
		RefreshTokenExpiresAt: now.Add(s.refresh.ttl),
		TokenType:             "Bearer",
	}

	var err error
	pair.AccessToken, err = s.sign(s.access, &Claims{
		RegisteredClaims: s.registered(in.UserID, now, pair.AccessTokenExpiresAt),
		UserID:           in.UserID.String(),
		Name:             in.Name,
		Email:            in.Email,
		Role:             in.Role,
		AllowedRoutes:    in.AllowedRoutes,
		TokenType:        TokenTypeAccess,
		IssuedAtMs:       now.UnixMilli(),
	})
	if err != nil {
		return nil, err
	}
	pair.RefreshToken, err = s.sign(s.refresh, &Claims{
		RegisteredClaims: s.registered(in.UserID, now, pair.RefreshTokenExpiresAt),
		UserID:           in.UserID.String(),
		TokenType:        TokenTypeRefresh,
		IssuedAtMs:       now.UnixMilli(),
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// registered fills the standard claims. Every token gets its own jti so
// it can be revoked on its own.
func (s *JWTService) registered(userID uuid.UUID, now, exp time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.issuer,
		Subject:   userID.String(),
		Audience:  jwt.ClaimStrings{s.issuer},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
}

func (s *JWTService) sign(kind tokenKind, claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(kind.secret)
}

func (s *JWTService) ValidateAccessToken(token string) (*Claims, error) {
	return s.parse(token, s.access, TokenTypeAccess)
}

func (s *JWTService) ValidateRefreshToken(token string) (*Claims, error) {
	return s.parse(token, s.refresh, TokenTypeRefresh)
}

func (s *JWTService) parse(raw string, kind tokenKind, want TokenType) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return kind.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.TokenType != want:
		return nil, ErrInvalidTokenType
	case claims.UserID == "":
		return nil, ErrMissingUserID
	}
	return claims, nil
}
