package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL settings for the durable key-value store.
// The store is optional: an empty Host disables it.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	PingTimeoutSec     int
}

// Enabled reports whether a database was configured.
func (c DatabaseConfig) Enabled() bool { return c.Host != "" }

// MinIOConfig holds settings for the media library the image pickers browse.
// An empty Endpoint disables the library.
type MinIOConfig struct {
	Endpoint         string
	AccessKey        string
	SecretKey        string
	Bucket           string
	Prefix           string
	UseSSL           bool
	PresignExpirySec int
}

// Enabled reports whether a media library was configured.
func (c MinIOConfig) Enabled() bool { return c.Endpoint != "" }

// RemoteConfig points at the document API that accepts finalized drafts.
// UploadRoot is the only directory local documents may be read from; empty
// means local paths are refused.
type RemoteConfig struct {
	BaseURL    string
	Token      string
	TimeoutSec int
	UploadRoot string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	BindHost string
	Port     string
	LogLevel string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Remote   RemoteConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		BindHost: getEnv("BIND_HOST", "127.0.0.1"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			PingTimeoutSec:     getEnvInt("DB_PING_TIMEOUT_SEC", 5),
		},
		MinIO: MinIOConfig{
			Endpoint:         getEnv("MINIO_ENDPOINT", ""),
			AccessKey:        getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:        getEnv("MINIO_SECRET_KEY", ""),
			Bucket:           getEnv("MINIO_BUCKET", ""),
			Prefix:           getEnv("MINIO_PREFIX", "images/"),
			UseSSL:           getEnvBool("MINIO_USE_SSL", false),
			PresignExpirySec: getEnvInt("MINIO_PRESIGN_EXPIRY_SEC", 3600),
		},
		Remote: RemoteConfig{
			BaseURL:    getEnv("REMOTE_BASE_URL", "http://localhost:8081"),
			Token:      getEnv("REMOTE_TOKEN", ""),
			TimeoutSec: getEnvInt("REMOTE_TIMEOUT_SEC", 30),
			UploadRoot: getEnv("UPLOAD_ROOT", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
