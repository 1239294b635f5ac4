package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the Lotaya API server.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Assets   AssetConfig
	Mock     MockConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	URL string
}

// AssetConfig controls the fabricated asset URLs. No files ever exist at
// these locations; the host is a fixed literal the responses interpolate.
type AssetConfig struct {
	BaseURL string
}

// MockConfig tunes the simulated generation pipeline. Endpoint delays are
// fixed multiples of DelayUnit, so tests can run with the unit at zero.
type MockConfig struct {
	DelayUnit time.Duration
}

const defaultAssetBaseURL = "https://storage.googleapis.com/lotaya-assets"

// Load reads configuration from a .env file (if present) and environment
// variables, and returns a validated Config.
func Load() (*Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("LOTAYA_PORT", 8080),
			Env:  envString("LOTAYA_ENV", "development"),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DATABASE_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Assets: AssetConfig{
			BaseURL: envString("ASSET_BASE_URL", defaultAssetBaseURL),
		},
		Mock: MockConfig{
			DelayUnit: envDuration("MOCK_DELAY_UNIT", time.Second),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}

	if !strings.HasPrefix(c.Assets.BaseURL, "http://") && !strings.HasPrefix(c.Assets.BaseURL, "https://") {
		return fmt.Errorf("ASSET_BASE_URL must start with http:// or https://, got %q", c.Assets.BaseURL)
	}

	if c.Mock.DelayUnit < 0 {
		return fmt.Errorf("MOCK_DELAY_UNIT must not be negative, got %s", c.Mock.DelayUnit)
	}

	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
