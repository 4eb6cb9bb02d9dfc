// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all settings for the application.
type Config struct {
	Port    string
	Mongo   MongoConfig
	JWT     JWTConfig
	Minio   MinioConfig
	Chat    ChatConfig
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI      string
	Database string
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret string
}

// MinioConfig holds object storage settings for waste photos.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// ChatConfig holds settings for the optional chat-completion pass-through.
type ChatConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Load reads configuration from environment variables. A .env file is
// honored when present.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port: getenv("PORT", "8080"),
		Mongo: MongoConfig{
			URI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getenv("MONGO_DB", "larderlog"),
		},
		Minio: MinioConfig{
			Endpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		},
		Chat: ChatConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: getenv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getenv("CHAT_MODEL", "gpt-4o-mini"),
		},
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.JWT.Secret = secret

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
