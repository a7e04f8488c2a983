// ABOUTME: Main entry point for the Feedscout API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedscout-api/api"
	"feedscout-api/api/handlers"
	"feedscout-api/core/commentlink"
	"feedscout-api/core/discovery"
	"feedscout-api/core/interfaces"
	"feedscout-api/core/services"
	"feedscout-api/infrastructure/cache/memory"
	"feedscout-api/infrastructure/cache/redis"
	"feedscout-api/infrastructure/cache/sqlite"
	"feedscout-api/infrastructure/feedparse"
	stdhttp "feedscout-api/infrastructure/http/standard"
	logruslogger "feedscout-api/infrastructure/logger/logrus"
	stdlogger "feedscout-api/infrastructure/logger/standard"
	oteltelemetry "feedscout-api/infrastructure/telemetry/otel"
	"feedscout-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := buildLogger(cfg)
	logger.Info("Starting Feedscout API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"exhaustive": cfg.Discovery.Exhaustive,
	})

	cache := buildCache(cfg, logger)

	httpClient := stdhttp.NewStandardHTTPClientWithUserAgent(
		time.Duration(cfg.Discovery.FetchTimeoutSeconds)*time.Second,
		cfg.Discovery.UserAgent,
	)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		FeedParser: feedparse.NewGofeedParser(),
		Logger:     logger,
		Telemetry:  oteltelemetry.NewOtelTelemetry("feedscout-api"),
	}

	// Discovery engine: special-purpose services first, the generic
	// page scan as the fallback.
	iconTimeout := time.Duration(cfg.Discovery.IconTimeoutSeconds) * time.Second
	iconService := services.NewSiteIconService(deps, iconTimeout)

	registry := discovery.NewRegistry(deps, discovery.ValidatorOptions{
		FetchTimeout: time.Duration(cfg.Discovery.FetchTimeoutSeconds) * time.Second,
		MaxBodyBytes: cfg.Discovery.MaxBodyBytes,
	})
	registry.Register(discovery.NewRedditService(deps, iconTimeout))
	registry.Register(discovery.NewPodcastDirectoryService(deps))
	registry.Register(discovery.NewStandardService(deps, cfg.Discovery.Exhaustive, iconService))

	// Comment link extraction: explicit field, then typed links, then
	// markup patterns.
	extractors := commentlink.NewRegistry(logger)
	extractors.Register(commentlink.NewExplicitFieldExtractor())
	extractors.Register(commentlink.NewLinkRelExtractor())
	extractors.Register(commentlink.NewMarkupExtractor())

	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	discoverHandler := handlers.NewDiscoverHandler(registry, 0)
	discoverHandler.RegisterRoutes(humaAPI)

	commentLinkHandler := handlers.NewCommentLinkHandler(extractors)
	commentLinkHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildLogger selects the logging backend from configuration
func buildLogger(cfg *config.Config) interfaces.Logger {
	if cfg.Log.Backend == "standard" {
		return stdlogger.NewStandardLogger()
	}
	return logruslogger.NewLogrusLogger(logruslogger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
}

// buildCache selects the cache backend from configuration, falling back
// to memory when an external backend cannot be reached
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
}

func init() {
	// Print banner
	fmt.Println(`
    ______             __                    __
   / ____/__  ___  ____/ /_____________  __  __/ /_
  / /_  / _ \/ _ \/ __  / ___/ ___/ __ \/ / / / __/
 / __/ /  __/  __/ /_/ (__  ) /__/ /_/ / /_/ / /_
/_/    \___/\___/\__,_/____/\___/\____/\__,_/\__/
	`)
}
