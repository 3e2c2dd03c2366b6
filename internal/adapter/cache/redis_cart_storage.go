package cache

import (
	"context"
	"encoding/json"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/Benian44/ly-confection/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// RedisCartStorage keeps the serialized cart under a single fixed key,
// the Redis equivalent of the browser's localStorage slot.
type RedisCartStorage struct {
	rdb *redis.Client
	key string
}

func NewRedisCartStorage(rdb *redis.Client, key string) *RedisCartStorage {
	return &RedisCartStorage{rdb: rdb, key: key}
}

func (s *RedisCartStorage) Load(ctx context.Context) (domain.Cart, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		// Corrupt payload is an empty cart, never an error.
		return nil, nil
	}
	return cart, nil
}

func (s *RedisCartStorage) Save(ctx context.Context, cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key, raw, 0).Err()
}

var _ usecase.CartStorage = (*RedisCartStorage)(nil)
