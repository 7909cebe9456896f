package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends selectable via STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds the application configuration.
type Config struct {
	Environment          string
	ServerPort           int
	LogLevel             string
	StoreBackend         string
	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDatabase     string
	PostgresSSLMode      string
	RedisURL             string
	CacheTTLSeconds      int
	StatsIntervalSeconds int
	OTLPEndpoint         string
	CORSAllowedOrigins   []string
}

// Load reads configuration from the environment, with a .env file applied
// first when one exists next to the binary.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}

	pgPort, err := intEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return nil, err
	}

	cacheTTL, err := intEnv("CACHE_TTL_SECONDS", 60)
	if err != nil {
		return nil, err
	}

	statsInterval, err := intEnv("STATS_INTERVAL_SECONDS", 30)
	if err != nil {
		return nil, err
	}

	backend := getEnv("STORE_BACKEND", BackendMemory)
	if backend != BackendMemory && backend != BackendPostgres {
		return nil, fmt.Errorf("invalid STORE_BACKEND: %q", backend)
	}

	return &Config{
		Environment:          getEnv("ENVIRONMENT", "development"),
		ServerPort:           port,
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		StoreBackend:         backend,
		PostgresHost:         getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:         pgPort,
		PostgresUser:         getEnv("POSTGRES_USER", "starchart"),
		PostgresPassword:     getEnv("POSTGRES_PASSWORD", "dev"),
		PostgresDatabase:     getEnv("POSTGRES_DB", "starchart"),
		PostgresSSLMode:      getEnv("POSTGRES_SSLMODE", "disable"),
		RedisURL:             getEnv("REDIS_URL", ""),
		CacheTTLSeconds:      cacheTTL,
		StatsIntervalSeconds: statsInterval,
		OTLPEndpoint:         getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		CORSAllowedOrigins: parseCSVEnv("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"http://localhost:3000",
		}),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseCSVEnv(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
