package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore tracks revoked session tokens in Redis. Entries expire
// with the token itself, so the set never needs cleanup.
// Key format: revoked:<jti>
type RevocationStore struct {
	client *redis.Client
}

func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marks the token id as revoked for ttlSeconds.
func (s *RevocationStore) Revoke(ctx context.Context, jti string, ttlSeconds int64) error {
	return s.client.Set(ctx, s.key(jti), "1", time.Duration(ttlSeconds)*time.Second).Err()
}

// IsRevoked reports whether the token id has been revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevocationStore) key(jti string) string {
	return "revoked:" + jti
}
