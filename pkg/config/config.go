// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, discovery, and logging settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Discovery contains feed discovery engine configuration
	Discovery DiscoveryConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// ReadTimeoutSeconds bounds reading one request
	ReadTimeoutSeconds int

	// WriteTimeoutSeconds bounds writing one response
	WriteTimeoutSeconds int

	// RateLimit is the per-IP request budget per minute; zero disables
	RateLimit int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file location
	Path string
}

// DiscoveryConfig holds feed discovery engine configuration
type DiscoveryConfig struct {
	// FetchTimeoutSeconds bounds one feed fetch
	FetchTimeoutSeconds int

	// IconTimeoutSeconds bounds one icon side-fetch
	IconTimeoutSeconds int

	// Exhaustive makes the standard service return every valid feed
	// instead of the first
	Exhaustive bool

	// UserAgent identifies the engine to remote servers
	UserAgent string

	// MaxBodyBytes caps how much of a feed body is read
	MaxBodyBytes int64
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Backend selects the logger implementation (logrus/standard)
	Backend string

	// Level is the minimum level emitted (debug/info/warn/error)
	Level string

	// File, when set, also writes rotated logs to this path
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:                getEnvOrDefault("PORT", "8000"),
			ReadTimeoutSeconds:  getEnvAsIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeoutSeconds: getEnvAsIntOrDefault("SERVER_WRITE_TIMEOUT", 30),
			RateLimit:           getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 100),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "feedscout-cache.db"),
			},
		},
		Discovery: DiscoveryConfig{
			FetchTimeoutSeconds: getEnvAsIntOrDefault("DISCOVERY_FETCH_TIMEOUT", 10),
			IconTimeoutSeconds:  getEnvAsIntOrDefault("DISCOVERY_ICON_TIMEOUT", 5),
			Exhaustive:          getEnvAsBoolOrDefault("DISCOVERY_EXHAUSTIVE", false),
			UserAgent:           getEnvOrDefault("DISCOVERY_USER_AGENT", "FeedscoutAPI/1.0 (+https://feedscout.app)"),
			MaxBodyBytes:        int64(getEnvAsIntOrDefault("DISCOVERY_MAX_BODY_BYTES", 10*1024*1024)),
		},
		Log: LogConfig{
			Backend: getEnvOrDefault("LOG_BACKEND", "logrus"),
			Level:   getEnvOrDefault("LOG_LEVEL", "info"),
			File:    getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis', or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Discovery.FetchTimeoutSeconds < 1 {
		return errors.New("discovery fetch timeout must be at least 1 second")
	}

	if c.Discovery.IconTimeoutSeconds < 1 {
		return errors.New("discovery icon timeout must be at least 1 second")
	}

	switch c.Log.Backend {
	case "logrus", "standard":
	default:
		return errors.New("log backend must be 'logrus' or 'standard'")
	}

	return nil
}
