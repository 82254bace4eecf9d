package repository

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/elanicia/storefront/cart/internal/domain"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	c := context.Background()

	redisContainer, err := testRedis.Run(c, "redis:7.4.2-alpine3.21")
	if err != nil {
		t.Fatalf("failed running redis container with error: %s", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(redisContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	})

	redisConnStr, err := redisContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting redis connection string with error: %s", err)
	}

	redisOpt, err := redis.ParseURL(redisConnStr)
	if err != nil {
		t.Fatalf("failed parsing redis connection string with error: %s", err)
	}

	client := redis.NewClient(redisOpt)
	if err = client.Ping(c).Err(); err != nil {
		t.Fatalf("failed ping redis client with error: %s", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisStorage(t *testing.T) {
	c := context.Background()
	client := setupRedis(t)
	s := NewRedisStorage(client, "elaniciaCart")

	t.Run("given missing key should return empty cart", func(t *testing.T) {
		items, err := s.Load(c)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("given saved cart should load it back", func(t *testing.T) {
		saved := []domain.LineItem{
			{ID: "w1", Name: "Test Watch", Price: "د.إ 1,000", Quantity: 3},
			{ID: "w2", Name: "Second", Price: "50", Quantity: 1},
		}
		require.NoError(t, s.Save(c, saved))

		loaded, err := s.Load(c)
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		assert.Equal(t, "w1", loaded[0].ID)
		assert.Equal(t, int32(3), loaded[0].Quantity)
		assert.Equal(t, "w2", loaded[1].ID)
	})

	t.Run("given corrupt key should return empty cart", func(t *testing.T) {
		require.NoError(t, client.Set(c, "elaniciaCart", "{not json", 0).Err())

		loaded, err := s.Load(c)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("given delete should remove the key", func(t *testing.T) {
		require.NoError(t, s.Save(c, []domain.LineItem{
			{ID: "w1", Name: "W", Price: "10", Quantity: 1},
		}))
		require.NoError(t, s.Delete(c))

		err := client.Get(c, "elaniciaCart").Err()
		assert.ErrorIs(t, err, redis.Nil)
	})
}
