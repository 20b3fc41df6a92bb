package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type RedisBlobRepository struct {
	Redis  *redis.Client
	Prefix string
}

func NewRedisBlobRepository(rdb *redis.Client) *RedisBlobRepository {
	return &RedisBlobRepository{Redis: rdb, Prefix: "skillmap:"}
}

func (r *RedisBlobRepository) Get(ctx context.Context, key string) (string, error) {
	v, err := r.Redis.Get(ctx, r.Prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrBlobNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (r *RedisBlobRepository) Set(ctx context.Context, key, value string) error {
	if err := r.Redis.Set(ctx, r.Prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
