package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/elanicia/storefront/cart/internal/domain"
	"github.com/elanicia/storefront/internal/log"
)

// RedisStorage keeps the serialized cart under one fixed key in redis.
type RedisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisStorage(client *redis.Client, key string) *RedisStorage {
	return &RedisStorage{client: client, key: key}
}

func (s *RedisStorage) Load(c context.Context) ([]domain.LineItem, error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "RedisStorage Load").
		Str(log.KEY_STORAGE_KEY, s.key).
		Logger()

	data, err := s.client.Get(c, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Info().Msg("cart key does not exist, starting with empty cart")
			return []domain.LineItem{}, nil
		}
		return nil, fmt.Errorf("failed reading cart from redis with error=%w", err)
	}

	items := []domain.LineItem{}
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		logger.Warn().Err(err).Msg("cart key is corrupt, starting with empty cart")
		return []domain.LineItem{}, nil
	}
	return items, nil
}

func (s *RedisStorage) Save(c context.Context, items []domain.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed marshaling cart with error=%w", err)
	}
	if err := s.client.Set(c, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed writing cart to redis with error=%w", err)
	}
	return nil
}

func (s *RedisStorage) Delete(c context.Context) error {
	if err := s.client.Del(c, s.key).Err(); err != nil {
		return fmt.Errorf("failed deleting cart from redis with error=%w", err)
	}
	return nil
}
