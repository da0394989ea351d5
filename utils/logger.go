package utils

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger   *zap.Logger = zap.NewNop()
	loggerMu sync.RWMutex
)

// InitLogger builds the process logger. Development and test environments get
// the console encoder, everything else JSON.
func InitLogger(env string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	switch env {
	case "development", "test":
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	SetLogger(l)
	return l, nil
}

func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// L returns the process logger, a no-op logger until InitLogger runs.
func L() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
