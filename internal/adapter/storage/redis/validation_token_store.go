package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cerebro-wallet/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ValidationTokenStore keeps biometric freshness tokens in Redis with a TTL
// equal to the freshness window, so a successful check survives across
// requests exactly as long as the guard would accept it.
type ValidationTokenStore struct {
	client *goredis.Client
	prefix string
}

// NewValidationTokenStore creates a Redis-backed validation token store.
func NewValidationTokenStore(client *goredis.Client) *ValidationTokenStore {
	return &ValidationTokenStore{
		client: client,
		prefix: "biotoken:",
	}
}

func (s *ValidationTokenStore) Put(ctx context.Context, userID string, v domain.BiometricValidation, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal validation token: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+userID, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set validation token: %w", err)
	}
	return nil
}

// Get returns (nil, nil) when no token exists or it has expired.
func (s *ValidationTokenStore) Get(ctx context.Context, userID string) (*domain.BiometricValidation, error) {
	data, err := s.client.Get(ctx, s.prefix+userID).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get validation token: %w", err)
	}

	var v domain.BiometricValidation
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("unmarshal validation token: %w", err)
	}
	return &v, nil
}
