package repository

import (
	"context"
	"errors"
	"fmt"

	"carediary/config"
)

var ErrNotFound = errors.New("key not found")

// KVStore is the byte-level backend behind DailyLogRepo. Put always replaces
// the whole value stored under key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Backend() string
}

// OpenKVStore connects the backend selected by cfg.Driver
func OpenKVStore(ctx context.Context, cfg config.DatabaseConfig) (KVStore, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverSQLite:
		return NewSQLiteStore(ctx, cfg.SQLitePath)
	case config.DriverMongo:
		client, err := NewMongoClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewMongoStore(ctx, client, cfg.DatabaseName, cfg.Collection)
	case config.DriverRedis:
		return NewRedisStore(ctx, cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
