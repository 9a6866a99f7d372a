package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	// MaxImageSize is the largest accepted product image upload.
	MaxImageSize      int64 = 5 << 20
	TokenTTL                = 24 * time.Hour
	AdminRole               = "admin"
	ImageCacheControl       = "public, max-age=86400"
	ServiceName             = "catalog-service"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	Environment      string
	LogLevel         string
	DBDriver         string
	PostgreSQLConfig PostgreSQLConfig
	SQLitePath       string
	JWTSecret        string
	AdminConfig      AdminConfig
	KafkaConfig      KafkaConfig
	TracingConfig    TracingConfig
}

type PostgreSQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
}

// AdminConfig holds the single admin identity. PasswordHash, when set, takes
// precedence over the plaintext Password.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "8080"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     getEnv("DB_HOST", "localhost"),
			DBPort:     getEnv("DB_PORT", "5432"),
			DBName:     os.Getenv("DB_NAME"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		SQLitePath: getEnv("SQLITE_PATH", "catalog.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		AdminConfig: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     os.Getenv("ADMIN_PASSWORD"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getEnv("BROKER_TOPIC", "catalog-events"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
