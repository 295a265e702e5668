package config

import (
	"os"
	"runtime"
	"strconv"
)

type Config struct {
	Port string

	// Auth. Empty disables authentication on the API routes.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Parsing
	ParseWorkers int
	MaxListDepth int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("SLIDEGEST_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		ParseWorkers: envInt("PARSE_WORKERS", runtime.NumCPU()),
		MaxListDepth: envInt("MAX_LIST_DEPTH", 8),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.ParseWorkers <= 0 {
		cfg.ParseWorkers = 1
	}
	if cfg.MaxListDepth <= 0 {
		cfg.MaxListDepth = 8
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
