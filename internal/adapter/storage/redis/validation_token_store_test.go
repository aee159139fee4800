package redis_test

import (
	"context"
	"testing"
	"time"

	"cerebro-wallet/internal/adapter/storage/redis"
	"cerebro-wallet/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationTokenStore_PutAndGet(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewValidationTokenStore(client)
	ctx := context.Background()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := domain.BiometricValidation{Level: 2, At: at}
	require.NoError(t, store.Put(ctx, "alice", token, time.Minute))

	got, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Level)
	assert.True(t, got.At.Equal(at))
}

func TestValidationTokenStore_MissingToken(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewValidationTokenStore(client)

	got, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestValidationTokenStore_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewValidationTokenStore(client)
	ctx := context.Background()

	token := domain.BiometricValidation{Level: 3, At: time.Now().UTC()}
	require.NoError(t, store.Put(ctx, "alice", token, time.Minute))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got, "token gone after the freshness window")
}

func TestValidationTokenStore_PerUserIsolation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewValidationTokenStore(client)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "alice", domain.BiometricValidation{Level: 2}, time.Minute))
	require.NoError(t, store.Put(ctx, "bob", domain.BiometricValidation{Level: 3}, time.Minute))

	a, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	b, err := store.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 2, a.Level)
	assert.Equal(t, 3, b.Level)
}
