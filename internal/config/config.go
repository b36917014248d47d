package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	EnvFile  string
	Log      LogConfig
	Storage  StorageConfig
	Supabase SupabaseConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type StorageConfig struct {
	MaxFileSize int64 // 0 means no limit
	MaxPixels   int64 // 0 means no limit
	IconPrefix  string
}

type SupabaseConfig struct {
	URL    string
	KEY    string
	BUCKET string
}

// Enabled reports whether generated icons should be published to Supabase Storage.
func (c SupabaseConfig) Enabled() bool {
	return c.URL != "" && c.BUCKET != ""
}

// EnvFileVar names the variable pointing at an optional env file. No .env file
// is read unless it is set.
const EnvFileVar = "ICONGEN_ENV_FILE"

// DefaultMaxPixels is the source pixel limit used when MAX_PIXELS is unset. It
// matches the point at which Pillow refuses an image as a decompression bomb.
const DefaultMaxPixels = 178956970

// Load builds the configuration from the environment, first loading the file
// named by ICONGEN_ENV_FILE when it is set.
func Load() (*Config, error) {
	envFile := os.Getenv(EnvFileVar)
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		EnvFile: envFile,
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 0),
			MaxPixels:   getEnvAsInt64("MAX_PIXELS", DefaultMaxPixels),
			IconPrefix:  getEnv("ICON_PREFIX", "icons"),
		},
		Supabase: SupabaseConfig{
			URL:    getEnv("SUPABASE_URL", ""),
			KEY:    getEnv("SUPABASE_KEY", ""),
			BUCKET: getEnv("SUPABASE_BUCKET", ""),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}
