package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/cache"
)

// Config holds all configuration for the application
type Config struct {
	Env     string
	Server  ServerConfig
	API     APIConfig
	Cookie  CookieConfig
	Cache   CacheConfig
	Redis   cache.RedisConfig
	Logger  LoggerConfig
	Tracing TracingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	LoginRateLimit int
}

// APIConfig describes the remote REST backend the console talks to
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CookieConfig holds token cookie attributes
type CookieConfig struct {
	Secure bool
	Domain string
}

// CacheConfig selects the resource cache backend. A TTL of 0 disables
// caching for both drivers.
type CacheConfig struct {
	Driver string
	TTL    time.Duration
}

// LoggerConfig holds zap logger configuration
type LoggerConfig struct {
	Level      string
	Format     string
	Output     string
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// TracingConfig holds OTLP exporter configuration
type TracingConfig struct {
	Endpoint    string
	ServiceName string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present; real environment values win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			LoginRateLimit: parseInt(getEnv("LOGIN_RATE_LIMIT", "10"), 10),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8000/api/"),
			Timeout: parseDuration(getEnv("API_TIMEOUT", "0s"), 0),
		},
		Cookie: CookieConfig{
			Secure: getEnv("COOKIE_SECURE", "false") == "true",
			Domain: getEnv("COOKIE_DOMAIN", ""),
		},
		Cache: CacheConfig{
			Driver: getEnv("CACHE_DRIVER", "memory"),
			TTL:    parseDuration(getEnv("CACHE_TTL", "5m"), 5*time.Minute),
		},
		Redis: cache.RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		Logger: LoggerConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "./logs/artist-console.log"),
			MaxSize:    parseInt(getEnv("LOG_MAX_SIZE_MB", "100"), 100),
			MaxBackups: parseInt(getEnv("LOG_MAX_BACKUPS", "3"), 3),
			MaxAge:     parseInt(getEnv("LOG_MAX_AGE_DAYS", "7"), 7),
		},
		Tracing: TracingConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "artist-console"),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}

func parseInt(value string, defaultValue int) int {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return defaultValue
}
