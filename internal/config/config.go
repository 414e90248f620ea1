package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrMissingSecret = errors.New("missing required env JWT_SECRET")

// Config holds every process-wide setting read from the environment
type Config struct {
	AppName     string
	Port        string
	DatabaseURL string
	JWTSecret   []byte
	TokenTTL    time.Duration
	RedisURL    string
	CacheTTL    time.Duration
	LogLevel    logrus.Level
}

// Load reads the environment. A missing signing secret is an error the caller must treat as fatal.
func Load() (Config, error) {
	cfg := Config{
		AppName:     EnvDefault("APP_NAME", "Catalog API v1.0"),
		Port:        EnvDefault("PORT", "3000"),
		DatabaseURL: databaseURL(),
		JWTSecret:   []byte(os.Getenv("JWT_SECRET")),
		RedisURL:    os.Getenv("REDIS_URL"),
	}

	if len(cfg.JWTSecret) == 0 {
		return Config{}, ErrMissingSecret
	}

	var err error
	if cfg.TokenTTL, err = EnvDurationDefault("JWT_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = EnvDurationDefault("CACHE_TTL", time.Minute); err != nil {
		return Config{}, err
	}

	cfg.LogLevel, err = logrus.ParseLevel(EnvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvDurationDefault(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
