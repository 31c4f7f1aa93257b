package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Database. Empty means no persistent store: the service runs degraded
	// with an empty in-memory substitute.
	DatabaseURL string

	// Redis corpus cache. Empty disables caching.
	RedisURL string
	CacheTTL time.Duration

	// Corpus warmer interval (only runs when the cache is enabled).
	WarmInterval time.Duration

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// FAQ matching. The threshold and prefix bonus were chosen empirically
	// against the seed corpus, so they stay tunable.
	MatchThreshold   int
	MatchPrefixBonus int

	// Admin contact defaults, used when the contact store has no record.
	AdminName  string
	AdminEmail string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// OIDC (guards the /admin surface; admin routes are disabled when unset)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
	AdminSubjects    string // Comma-separated OIDC subjects allowed to administer
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is honoured if present.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Env:              getEnv("ENV", "development"),
		ServerAddr:       getEnv("SERVER_ADDR", ":8000"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		CacheTTL:         getEnvDuration("CACHE_TTL", 5*time.Minute),
		WarmInterval:     getEnvDuration("WARM_INTERVAL", 15*time.Minute),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		MatchThreshold:   getEnvInt("MATCH_THRESHOLD", 70),
		MatchPrefixBonus: getEnvInt("MATCH_PREFIX_BONUS", 5),
		AdminName:        getEnv("ADMIN_NAME", "GAT Admin"),
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@example.com"),
		CORSOrigins:      getEnv("CORS_ORIGINS", "http://localhost:5173"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:8000/auth/callback"),
		AdminSubjects:    getEnv("ADMIN_SUBJECTS", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
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

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
