package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	OMDb     OMDbConfig
	OpenAI   OpenAIConfig
	MinIO    MinIOConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Path         string
	QueryTimeout time.Duration
}

type OMDbConfig struct {
	APIKey      string
	BaseURL     string
	HTTPTimeout time.Duration
}

type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	HTTPTimeout time.Duration
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8020"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Path:         getEnvOrDefault("DB_PATH", "data/moviweb.db"),
			QueryTimeout: getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		OMDb: OMDbConfig{
			APIKey:      os.Getenv("OMDB_API_KEY"),
			BaseURL:     getEnvOrDefault("OMDB_BASE_URL", "https://www.omdbapi.com"),
			HTTPTimeout: getDurationOrDefault("OMDB_HTTP_TIMEOUT", 10*time.Second),
		},
		OpenAI: OpenAIConfig{
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", ""),
			Model:       getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
			HTTPTimeout: getDurationOrDefault("OPENAI_HTTP_TIMEOUT", 30*time.Second),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnvOrDefault("AWS_ENDPOINT", ""),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "posters"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", true),
			PublicURL:       getEnvOrDefault("AWS_URL", ""),
		},
	}
}

// Validate checks the secrets the app cannot start without. Poster storage is
// optional, so MinIO credentials are not checked here.
func (c *Config) Validate() error {
	if c.OMDb.APIKey == "" {
		return fmt.Errorf("OMDB_API_KEY is required")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	return nil
}

// PosterStorageEnabled reports whether MinIO poster uploads are configured.
func (c *Config) PosterStorageEnabled() bool {
	return c.MinIO.Endpoint != "" && c.MinIO.AccessKeyID != "" && c.MinIO.SecretAccessKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
