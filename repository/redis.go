package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carediary/utils"

	"github.com/redis/go-redis/v9"
)

// RedisStore writes each record as a plain string key without expiry.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	timer := utils.TrackDBOperation("get", s.Backend())
	defer timer.ObserveDuration()

	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		utils.TrackError("database", "redis_get_failed")
		return nil, err
	}
	return value, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	timer := utils.TrackDBOperation("put", s.Backend())
	defer timer.ObserveDuration()

	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		utils.TrackError("database", "redis_put_failed")
		return err
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close(context.Context) error {
	return s.client.Close()
}

func (s *RedisStore) Backend() string { return "redis" }
