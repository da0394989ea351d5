package config

import (
	"carediary/utils"
	"time"
)

// Storage drivers understood by repository.OpenKVStore
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
	DriverRedis  = "redis"
)

type DatabaseConfig struct {
	Driver          string
	Namespace       string
	SQLitePath      string
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
	Collection      string
	RetryWrites     bool
	RedisURL        string
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver:          utils.GetEnvAsString("STORE_DRIVER", DriverSQLite),
		Namespace:       utils.GetEnvAsString("STORAGE_NAMESPACE", "donki-diary"),
		SQLitePath:      utils.GetEnvAsString("SQLITE_PATH", "carediary.db"),
		URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		DatabaseName:    utils.GetEnvAsString("MONGO_DB", "carediary"),
		Collection:      utils.GetEnvAsString("MONGO_COLLECTION", "daily_logs"),
		RetryWrites:     utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
		RedisURL:        utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
	}
}
