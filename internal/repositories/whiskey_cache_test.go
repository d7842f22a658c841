package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestWhiskeyCacheRepository(t *testing.T) {
	mr, client := setupRedis(t)
	repo := NewWhiskeyCacheRepository(client, time.Minute)
	ctx := context.Background()

	whiskey := &models.Whiskey{ID: 4, Name: "Hibiki Harmony", Distillery: "Suntory", Age: ptr(17)}

	t.Run("miss", func(t *testing.T) {
		got, err := repo.Get(ctx, 4)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, whiskey))
		assert.True(t, mr.Exists("whiskey:4"))
		assert.Equal(t, time.Minute, mr.TTL("whiskey:4"))

		got, err := repo.Get(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, whiskey, got)
	})

	t.Run("expires", func(t *testing.T) {
		mr.FastForward(2 * time.Minute)
		got, err := repo.Get(ctx, 4)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, whiskey))
		require.NoError(t, repo.Delete(ctx, 4))
		assert.False(t, mr.Exists("whiskey:4"))
	})

	t.Run("corrupt value", func(t *testing.T) {
		require.NoError(t, mr.Set("whiskey:5", "{not json"))
		_, err := repo.Get(ctx, 5)
		assert.Error(t, err)
	})
}

func TestWhiskeyCacheRepository_Unavailable(t *testing.T) {
	mr, client := setupRedis(t)
	repo := NewWhiskeyCacheRepository(client, time.Minute)
	mr.Close()

	_, err := repo.Get(context.Background(), 1)
	assert.Error(t, err)
	assert.Error(t, repo.Set(context.Background(), &models.Whiskey{ID: 1}))
}
