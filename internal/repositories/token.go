package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-hydroponics/internal/logger"
)

const revokedTokenPrefix = "revoked_token:"

// TokenRevocationRepository keeps revoked token ids in Redis until they expire.
type TokenRevocationRepository struct {
	client *redis.Client
}

func NewTokenRevocationRepository(client *redis.Client) *TokenRevocationRepository {
	return &TokenRevocationRepository{client: client}
}

// Revoke marks tokenID as revoked for ttl. A non-positive ttl is a no-op
// since the token has already expired.
func (r *TokenRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := revokedTokenPrefix + tokenID
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("redis set", "key", key, "ttl", ttl, "error", err)

	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *TokenRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedTokenPrefix + tokenID
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow("redis exists", "key", key, "result", n, "error", err)

	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
