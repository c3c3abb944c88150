package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hirebase/recruiting/pkg/auth"
)

// Store implements auth.TokenStore backed by Redis: one-time
// verification/reset tokens and the logout blacklist of JWT ids.
type Store struct {
	client       *redis.Client
	blacklistTTL time.Duration
}

func NewStore(client *redis.Client) *Store {
	return &Store{
		client:       client,
		blacklistTTL: 24 * time.Hour, // fallback when token exp is already past
	}
}

func oneTimeKey(purpose, token string) string {
	return fmt.Sprintf("token:%s:%s", purpose, token)
}

func (s *Store) SaveOneTime(ctx context.Context, purpose, token string, userID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, oneTimeKey(purpose, token), userID.String(), ttl).Err()
}

func (s *Store) ConsumeOneTime(ctx context.Context, purpose, token string) (uuid.UUID, error) {
	key := oneTimeKey(purpose, token)
	val, err := s.client.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, auth.ErrInvalidToken
	}
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, auth.ErrInvalidToken
	}
	return id, nil
}

func (s *Store) BlacklistJTI(ctx context.Context, jti string, expiresAt time.Time) error {
	key := fmt.Sprintf("blacklist:jti:%s", jti)
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		ttl = s.blacklistTTL
	}
	return s.client.Set(ctx, key, "1", ttl).Err()
}

func (s *Store) JTIBlacklisted(ctx context.Context, jti string) (bool, error) {
	key := fmt.Sprintf("blacklist:jti:%s", jti)
	n, err := s.client.Exists(ctx, key).Result()
	return n > 0, err
}
