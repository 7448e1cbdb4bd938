package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AuthMode selects how the sync endpoint establishes the caller's identity.
type AuthMode string

const (
	// AuthModeNone trusts the userId carried in the request.
	AuthModeNone AuthMode = "none"
	// AuthModeJWT requires a bearer token whose subject is the user id.
	AuthModeJWT AuthMode = "jwt"
)

// Config holds application configuration
type Config struct {
	// Server
	Port            string
	Env             string
	CORSAllowOrigin string

	// Database. An empty DatabaseURL is not an error at load time; the
	// database manager reports it on first use.
	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Auth
	AuthMode  AuthMode
	JWTSecret string

	// Admin
	AdminAPIKey string

	// Assistant
	GeminiAPIKey string
	GeminiModel  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),

		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),

		AuthMode:  AuthMode(strings.ToLower(getEnv("AUTH_MODE", string(AuthModeNone)))),
		JWTSecret: os.Getenv("JWT_SECRET"),

		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	switch config.AuthMode {
	case AuthModeNone, AuthModeJWT:
	default:
		log.Printf("Warning: unknown AUTH_MODE %q, falling back to %q\n", config.AuthMode, AuthModeNone)
		config.AuthMode = AuthModeNone
	}

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
