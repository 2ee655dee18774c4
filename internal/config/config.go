package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Storage
	StorageBackend string // file, memory or postgres
	DataDir        string // file backend root
	MaxValueBytes  int    // file backend per-value cap, 0 = default
	DatabaseURL    string // postgres backend

	// JWT
	JWTSecret          string
	JWTExpirationHours int

	// CORS
	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		StorageBackend:     getEnv("STORAGE_BACKEND", BackendFile),
		DataDir:            getEnv("DATA_DIR", "./data"),
		MaxValueBytes:      getEnvInt("MAX_VALUE_BYTES", 0),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		AllowedOrigins:     splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:4200")),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	switch cfg.StorageBackend {
	case BackendFile, BackendMemory:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required with STORAGE_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
