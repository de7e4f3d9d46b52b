package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const saleKeyPrefix = "sale:"

// IdempotencyStore claims client-supplied sale IDs so a retried sale request is
// detected before it reaches the store. The sale table's key condition remains
// the backstop once a claim expires.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

// ClaimSaleID returns false when the ID was already claimed.
func (s *IdempotencyStore) ClaimSaleID(ctx context.Context, saleID string) (bool, error) {
	return s.client.SetNX(ctx, saleKeyPrefix+saleID, 1, s.ttl).Result()
}

// ReleaseSaleID frees a claim after a failed write so the client can retry
// with the same sale ID.
func (s *IdempotencyStore) ReleaseSaleID(ctx context.Context, saleID string) error {
	return s.client.Del(ctx, saleKeyPrefix+saleID).Err()
}
