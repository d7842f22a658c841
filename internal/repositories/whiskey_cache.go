package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
)

// WhiskeyCacheRepository caches catalog items in Redis
type WhiskeyCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached items
}

// NewWhiskeyCacheRepository creates a new repository instance with the given TTL
func NewWhiskeyCacheRepository(client *redis.Client, expiration time.Duration) *WhiskeyCacheRepository {
	return &WhiskeyCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func whiskeyKey(id int64) string {
	return fmt.Sprintf("whiskey:%d", id)
}

// Get returns the cached whiskey, or nil on a cache miss.
func (r *WhiskeyCacheRepository) Get(ctx context.Context, id int64) (*models.Whiskey, error) {
	key := whiskeyKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var whiskey models.Whiskey
	if err := json.Unmarshal(val, &whiskey); err != nil {
		logger.Log.Infow("cache get", "key", key, "value", string(val), "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get", "key", key, "result", whiskey.ID)
	return &whiskey, nil
}

// Set caches the whiskey with expiration
func (r *WhiskeyCacheRepository) Set(ctx context.Context, whiskey *models.Whiskey) error {
	key := whiskeyKey(whiskey.ID)

	data, err := json.Marshal(whiskey)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("cache set", "key", key, "error", err)
	return err
}

// Delete evicts the whiskey from the cache
func (r *WhiskeyCacheRepository) Delete(ctx context.Context, id int64) error {
	key := whiskeyKey(id)

	err := r.client.Del(ctx, key).Err()
	logger.Log.Infow("cache delete", "key", key, "error", err)
	return err
}
