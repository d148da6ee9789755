package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revocations rejects tokens before they expire. Logout and refresh revoke
// a single token by JTI. A password change or a role change revokes every
// token the user holds.
type Revocations interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	// RevokeUser marks now as the cut-off; tokens issued before it are
	// rejected. ttl should cover the longest token lifetime.
	RevokeUser(ctx context.Context, userID string, ttl time.Duration) error
	Revoked(ctx context.Context, claims *Claims) (bool, error)
}

// beforeCutoff compares in milliseconds. A token carrying only the
// whole-second iat is revoked when issued in the cut-off second.
func beforeCutoff(claims *Claims, cutoff time.Time) bool {
	if claims.IssuedAtMs > 0 {
		return claims.IssuedAtMs < cutoff.UnixMilli()
	}
	return claims.IssuedAtTime().Unix() <= cutoff.Unix()
}

const (
	revokedTokenKey = "flexo:revoked:token:"
	revokedUserKey  = "flexo:revoked:user:"
)

// RedisRevocations shares revocations across replicas
type RedisRevocations struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisRevocations(client redis.UniversalClient) *RedisRevocations {
	return &RedisRevocations{client: client, now: time.Now}
}

func (r *RedisRevocations) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedTokenKey+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *RedisRevocations) RevokeUser(ctx context.Context, userID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, revokedUserKey+userID, r.now().UnixMilli(), ttl).Err(); err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}
	return nil
}

// Revoked checks both marks in one round trip
func (r *RedisRevocations) Revoked(ctx context.Context, claims *Claims) (bool, error) {
	var (
		token *redis.IntCmd
		user  *redis.StringCmd
	)
	_, err := r.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		token = p.Exists(ctx, revokedTokenKey+claims.ID)
		user = p.Get(ctx, revokedUserKey+claims.UserID)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("check revocations: %w", err)
	}
	if token.Val() > 0 {
		return true, nil
	}
	cutoff, err := user.Int64()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("read user cut-off: %w", err)
	}
	return beforeCutoff(claims, time.UnixMilli(cutoff)), nil
}

// MemoryRevocations is the single-process fallback used without Redis.
// Entries vanish on restart.
type MemoryRevocations struct {
	mu     sync.Mutex
	tokens map[string]time.Time // jti -> expiry
	users  map[string]mark
	now    func() time.Time
}

type mark struct {
	cutoff time.Time
	expiry time.Time
}

func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{
		tokens: make(map[string]time.Time),
		users:  make(map[string]mark),
		now:    time.Now,
	}
}

func (m *MemoryRevocations) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[jti] = m.now().Add(ttl)
	return nil
}

func (m *MemoryRevocations) RevokeUser(_ context.Context, userID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.users[userID] = mark{cutoff: now, expiry: now.Add(ttl)}
	return nil
}

func (m *MemoryRevocations) Revoked(_ context.Context, claims *Claims) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()

	if expiry, ok := m.tokens[claims.ID]; ok {
		if now.Before(expiry) {
			return true, nil
		}
		delete(m.tokens, claims.ID)
	}
	mk, ok := m.users[claims.UserID]
	if !ok {
		return false, nil
	}
	if !now.Before(mk.expiry) {
		delete(m.users, claims.UserID)
		return false, nil
	}
	return beforeCutoff(claims, mk.cutoff), nil
}

var (
	_ Revocations = (*RedisRevocations)(nil)
	_ Revocations = (*MemoryRevocations)(nil)
)
