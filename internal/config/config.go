package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Chess.com upstream
	ChessAPIBaseURL string
	HTTPTimeout     time.Duration
	UserAgent       string

	// Cache
	RedisURL    string
	StatsTTL    time.Duration
	ArchivesTTL time.Duration
	GamesTTL    time.Duration

	// Background cache warming. Zero disables the warmer.
	WarmInterval time.Duration

	// Club roster
	RosterPath string
}

// Load loads configuration from environment variables. REDIS_URL and
// ROSTER_PATH may stay empty: the service then runs on the in-process
// cache and the compiled-in roster.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		ChessAPIBaseURL: getEnv("CHESS_API_BASE_URL", "https://api.chess.com/pub"),
		HTTPTimeout:     getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
		UserAgent:       getEnv("USER_AGENT", "magnus-bot/1.0"),

		RedisURL:    getEnv("REDIS_URL", ""),
		StatsTTL:    getEnvDuration("STATS_CACHE_TTL", 5*time.Minute),
		ArchivesTTL: getEnvDuration("ARCHIVES_CACHE_TTL", time.Hour),
		GamesTTL:    getEnvDuration("GAMES_CACHE_TTL", 2*time.Minute),

		WarmInterval: getEnvDuration("WARM_INTERVAL", 10*time.Minute),

		RosterPath: getEnv("ROSTER_PATH", ""),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", cfg.Port)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
