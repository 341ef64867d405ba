package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string
	// LogLevel overrides the Env default (debug, info, warn, error)
	LogLevel string

	// Database. DatabaseURL selects PostgreSQL; when empty the file-backed
	// SQLite store at SQLitePath is used.
	DatabaseURL   string
	SQLitePath    string
	DBMaxConns    int32
	DBMinConns    int32
	DBMaxConnLife time.Duration

	// Identity used in place of authentication
	CurrentUserID int64

	// Redis (optional, rate limiting only)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limiting
	RateLimitMax          int
	RateLimitWindow       time.Duration
	RateLimitAllowPrivate bool

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Debug metrics (/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getint64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("invalid int64 for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName:  getenv("APP_NAME", "starwars-blog-api"),
		Env:      getenv("APP_ENV", "development"),
		Port:     getenv("PORT", "3000"),
		GinMode:  getenv("GIN_MODE", "release"),
		LogLevel: getenv("LOG_LEVEL", ""),

		DatabaseURL:   getenv("DATABASE_URL", ""),
		SQLitePath:    getenv("SQLITE_PATH", filepath.Join(os.TempDir(), "starwars.db")),
		DBMaxConns:    int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns:    int32(getint("DB_MIN_CONNS", 2)),
		DBMaxConnLife: getdur("DB_MAX_CONN_LIFETIME", time.Hour),

		CurrentUserID: getint64("CURRENT_USER_ID", 1),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		RateLimitMax:          getint("RATE_LIMIT_MAX", 300),
		RateLimitWindow:       getdur("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitAllowPrivate: getbool("RATE_LIMIT_ALLOW_PRIVATE", false),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", false),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),
	}
}

// UsePostgres reports whether DATABASE_URL points at a PostgreSQL server
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

// PostgresDSN returns DATABASE_URL in the form pgx expects.
// Hosted providers still hand out the legacy postgres:// scheme.
func (c *Config) PostgresDSN() string {
	if strings.HasPrefix(c.DatabaseURL, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(c.DatabaseURL, "postgres://")
	}
	return c.DatabaseURL
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
