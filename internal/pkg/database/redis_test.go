package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedisClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return &RedisClient{Client: client}, mr
}

func TestNewRedisClient(t *testing.T) {
	t.Run("connects to a live server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := NewRedisClient(models.RedisConfig{
			Host: mr.Host(),
			Port: mustPort(t, mr),
		})
		require.NoError(t, err)
		defer client.Close()

		assert.NoError(t, client.Ping(context.Background()))
		assert.NotNil(t, client.GetClient())
	})

	t.Run("connection error", func(t *testing.T) {
		client, err := NewRedisClient(models.RedisConfig{
			Host: "localhost",
			Port: 1,
		})
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestRedisClient_IncrWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("first hit starts the window", func(t *testing.T) {
		client, mr := newMiniRedisClient(t)

		count, ttl, err := client.IncrWindow(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, time.Minute, ttl)
		assert.Equal(t, time.Minute, mr.TTL("k"))
	})

	t.Run("subsequent hits keep the window", func(t *testing.T) {
		client, mr := newMiniRedisClient(t)

		_, _, err := client.IncrWindow(ctx, "k", time.Minute)
		require.NoError(t, err)
		mr.FastForward(20 * time.Second)

		count, ttl, err := client.IncrWindow(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.Equal(t, 40*time.Second, ttl)
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		client, mr := newMiniRedisClient(t)

		for i := 0; i < 3; i++ {
			_, _, err := client.IncrWindow(ctx, "k", time.Minute)
			require.NoError(t, err)
		}
		mr.FastForward(time.Minute + time.Second)

		count, _, err := client.IncrWindow(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("server down", func(t *testing.T) {
		client, mr := newMiniRedisClient(t)
		mr.Close()

		_, _, err := client.IncrWindow(ctx, "k", time.Minute)
		assert.Error(t, err)
	})
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}
