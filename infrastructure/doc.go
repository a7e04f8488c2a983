// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, feed parsing, logging, and tracing.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-backed cache for single-node persistence
// - feedparse: Feed parser built on gofeed with format-specific enrichment
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: JSON structured logger with file rotation
// - logger/standard: Simple structured logger implementation
// - telemetry/otel: OpenTelemetry tracing adapter
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The loggers support structured logging with fields:
//
//	logger := standard.NewStandardLogger()
//	logger.Info("Processing request", map[string]interface{}{
//	    "request_id": "123",
//	    "action":     "discover",
//	})
package infrastructure
