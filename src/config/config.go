package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	DatabasePath      string
	LogLevel          string
	InputPaths        []string
	MaxExtractWorkers int
	CacheExpiration   time.Duration
	CacheCleanup      time.Duration
}

var Cfg *AppConfig

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, relying on OS environment variables and defaults.")
	}

	maxWorkers := getEnvAsInt("MAX_EXTRACT_WORKERS", 4)
	if maxWorkers < 1 {
		log.Printf("WARNING: MAX_EXTRACT_WORKERS must be at least 1, got %d. Using 1.", maxWorkers)
		maxWorkers = 1
	}

	Cfg = &AppConfig{
		DatabasePath:      getEnv("DATABASE_PATH", "./comdirect.db"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		InputPaths:        splitPaths(getEnv("INPUT_PATHS", "")),
		MaxExtractWorkers: maxWorkers,
		CacheExpiration:   getEnvAsDuration("EXTRACT_CACHE_EXPIRATION", 15*time.Minute),
		CacheCleanup:      getEnvAsDuration("EXTRACT_CACHE_CLEANUP", 30*time.Minute),
	}

	log.Printf("Configuration loaded: LogLevel=%s, DBPath=%s, MaxExtractWorkers=%d",
		Cfg.LogLevel, Cfg.DatabasePath, Cfg.MaxExtractWorkers)
}

// splitPaths parses a comma-separated path list, dropping empty entries.
func splitPaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paths = append(paths, trimmed)
		}
	}
	return paths
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
