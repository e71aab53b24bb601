package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration. Driver is "postgres" or "sqlite";
	// SQLitePath is only read for the sqlite driver.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Anti-forgery token secret
	CSRFSecret string

	// Read-endpoint cache expiry
	CacheTTL time.Duration

	// Allowed CORS origins
	CORSOrigins []string
}

// LoadConfig creates a Config from environment variables, falling back to
// Docker secrets in production the way the deployment mounts them.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	cfg := &Config{
		ServerHost:    envOr("SERVER_HOST", "0.0.0.0"),
		ServerPort:    envOr("SERVER_PORT", "8080"),
		DBDriver:      envOr("DB_DRIVER", "sqlite"),
		DBHost:        envOr("DB_HOST", "localhost"),
		DBPort:        envOr("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        envOr("DB_NAME", "recipebox"),
		DBSSLMode:     envOr("DB_SSL_MODE", "disable"),
		SQLitePath:    envOr("SQLITE_PATH", "recipes.db"),
		RedisHost:     envOr("REDIS_HOST", "localhost"),
		RedisPort:     envOr("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),
		CSRFSecret:    envOr("CSRF_SECRET_KEY", ""),
		CacheTTL:      5 * time.Minute,
		CORSOrigins:   splitOrigins(envOr("CORS_ORIGINS", "http://localhost:5173")),
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", raw, err)
		}
		cfg.RedisDB = db
	}

	if raw := os.Getenv("CACHE_TTL_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS %q: %w", raw, err)
		}
		cfg.CacheTTL = time.Duration(secs) * time.Second
	}

	if env == Production {
		applySecrets(cfg)
	} else if cfg.CSRFSecret == "" {
		// Dev/test fallback; production requires a real secret.
		cfg.CSRFSecret = "csrf-dev"
	}

	if err := ValidateConfig(env, cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applySecrets overlays Docker secrets onto the config where present.
func applySecrets(cfg *Config) {
	if v := readSecret("db_user"); v != "" {
		cfg.DBUser = v
	}
	if v := readSecret("db_password"); v != "" {
		cfg.DBPassword = v
	}
	if v := readSecret("redis_password"); v != "" {
		cfg.RedisPassword = v
	}
	if v := readSecret("csrf_secret_key"); v != "" {
		cfg.CSRFSecret = v
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
