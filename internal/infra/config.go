package infra

import (
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"travelling/pkg/utils"
)

type Config struct {
	Port        string
	PostgresURL string
	JWTSecret   string
	JWTTTL      time.Duration
	AutoMigrate bool
	LogLevel    string
	CORSOrigins []string
	Storage     StorageConfig
}

type StorageConfig struct {
	Provider     string
	Bucket       string
	SignedURLTTL time.Duration

	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string

	GCSProjectID       string
	GCSCredentialsJSON string
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("no .env file loaded", zap.Error(err))
	}

	return &Config{
		Port:        utils.GetEnvWithDefault("PORT", "8080"),
		PostgresURL: utils.GetEnvWithDefault("POSTGRES_URL", ""),
		JWTSecret:   utils.GetEnvWithDefault("JWT_SECRET", ""),
		JWTTTL:      utils.GetEnvDuration("JWT_TTL", 3*time.Hour),
		AutoMigrate: utils.GetEnvBool("AUTO_MIGRATE", true),
		LogLevel:    utils.GetEnvWithDefault("LOG_LEVEL", "info"),
		CORSOrigins: utils.GetEnvList("CORS_ORIGINS", []string{"*"}),
		Storage: StorageConfig{
			Provider:           utils.GetEnvWithDefault("STORAGE_PROVIDER", "s3"),
			Bucket:             utils.GetEnvWithDefault("STORAGE_BUCKET", ""),
			SignedURLTTL:       utils.GetEnvDuration("STORAGE_SIGNED_URL_TTL", 3*time.Hour),
			S3Endpoint:         utils.GetEnvWithDefault("S3_ENDPOINT", ""),
			S3Region:           utils.GetEnvWithDefault("S3_REGION", "auto"),
			S3AccessKeyID:      utils.GetEnvWithDefault("S3_ACCESS_KEY_ID", ""),
			S3SecretAccessKey:  utils.GetEnvWithDefault("S3_SECRET_ACCESS_KEY", ""),
			GCSProjectID:       utils.GetEnvWithDefault("GCS_PROJECT_ID", ""),
			GCSCredentialsJSON: utils.GetEnvWithDefault("GCS_CREDENTIALS_JSON", ""),
		},
	}
}
