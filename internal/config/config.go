package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Assist   AssistConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// DatabaseConfig is optional: with DBHost unset the server runs on the
// in-memory store.
type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type AssistConfig struct {
	BaseURL string
}

const (
	defaultAccessExpiresIn  = 15 * time.Minute
	defaultRefreshExpiresIn = 168 * time.Hour
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  defaultAccessExpiresIn,
		RefreshExpiresIn: defaultRefreshExpiresIn,
	}

	if v := opt("JWT_ACCESS_EXPIRES_IN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid JWT_ACCESS_EXPIRES_IN: %w", err)
		}
		cfg.JWT.AccessExpiresIn = d
	}
	if v := opt("JWT_REFRESH_EXPIRES_IN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid JWT_REFRESH_EXPIRES_IN: %w", err)
		}
		cfg.JWT.RefreshExpiresIn = d
	}

	cfg.Assist = AssistConfig{
		BaseURL: opt("AI_SERVICE_URL"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// UsePostgres reports whether a Postgres store was configured.
func (c Config) UsePostgres() bool {
	return c.Database.DBHost != ""
}

// IsDevelopment gates dev-only behavior such as seeding.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Environment, "development")
}
