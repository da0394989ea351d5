package config

import (
	"fmt"
	"os"
	"time"

	"carediary/model"
	"carediary/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultMedicationStart = "2025-12-19"

type Config struct {
	Env        string
	Port       string
	CORSOrigin string
	Database   DatabaseConfig

	PetName          string
	Location         *time.Location
	MedicationStart  time.Time
	MedicationTaskID string
	MaxPhotoBytes    int64

	// Auth is disabled when AccessPinHash is empty
	AccessPinHash     string
	JWTSecretKey      string
	JWTExpirationTime time.Duration
	ShareLinkTTL      time.Duration

	TelegramToken  string
	TelegramChatID int64
}

func (c *Config) AuthEnabled() bool {
	return c.AccessPinHash != ""
}

// Load reads .env (if present) and the process environment. Only values that
// cannot be defaulted produce an error.
func Load(log *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Warn("No .env file found, using system env")
	}

	cfg := &Config{
		Env:               utils.GetEnvAsString("GO_ENV", "production"),
		Port:              utils.GetEnvAsString("PORT", "8080"),
		CORSOrigin:        utils.GetEnvAsString("CORS_ALLOWED_ORIGIN", ""),
		Database:          LoadDatabaseConfig(),
		PetName:           utils.GetEnvAsString("PET_NAME", "Donki"),
		Location:          utils.GetEnvAsLocation("TIME_ZONE", time.Local),
		MedicationTaskID:  utils.GetEnvAsString("MEDICATION_TASK_ID", model.MedicationTaskID),
		MaxPhotoBytes:     utils.GetEnvAsInt64("MAX_PHOTO_BYTES", 5<<20),
		AccessPinHash:     utils.GetEnvAsString("ACCESS_PIN_HASH", ""),
		JWTSecretKey:      utils.GetEnvAsString("JWT_SECRET_KEY", ""),
		JWTExpirationTime: time.Duration(utils.GetEnvAsInt64("JWT_EXPIRATION_TIME", 7*24*3600)) * time.Second,
		ShareLinkTTL:      utils.GetEnvAsDuration("SHARE_LINK_TTL", 72*time.Hour),
		TelegramToken:     utils.GetEnvAsString("TELEGRAM_TOKEN", ""),
		TelegramChatID:    utils.GetEnvAsInt64("TELEGRAM_CHAT_ID", 0),
	}

	start, err := model.ParseDateKey(utils.GetEnvAsString("MEDICATION_START_DATE", defaultMedicationStart), cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("MEDICATION_START_DATE: %w", err)
	}
	cfg.MedicationStart = start

	if cfg.JWTSecretKey == "" {
		if cfg.AuthEnabled() {
			return nil, fmt.Errorf("JWT_SECRET_KEY is required when ACCESS_PIN_HASH is set")
		}
		// share links still need a key; one per process is enough without a PIN
		cfg.JWTSecretKey = randomSecret()
		log.Warn("JWT_SECRET_KEY not set, share links will not survive a restart")
	}

	if _, ok := model.FindTask(cfg.MedicationTaskID); !ok {
		log.Warn("MEDICATION_TASK_ID is not in the task catalog", zap.String("task_id", cfg.MedicationTaskID))
	}

	return cfg, nil
}
