package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisBackend struct {
	rdb *redis.Client
}

// NewRedisStore returns a Store that keeps each key as a plain Redis string
// without expiry.
func NewRedisStore(rdb *redis.Client, prefix string, log *zap.Logger) Store {
	return &kvStore{backend: &redisBackend{rdb: rdb}, prefix: prefix, log: log}
}

func (b *redisBackend) get(ctx context.Context, key string) (string, error) {
	value, err := b.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (b *redisBackend) set(ctx context.Context, key, value string) error {
	return b.rdb.Set(ctx, key, value, 0).Err()
}
