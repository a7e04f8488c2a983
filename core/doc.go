// Package core contains the business logic for the Feedscout API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (DiscoveredFeed, FeedItem, CommentLink)
// - discovery: Feed discovery engine with priority-ordered services
// - commentlink: Comment link extraction with priority-ordered extractors
// - strategy: Generic priority registry shared by discovery and extraction
// - services: Supporting services such as site icon resolution
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, parser, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "feedscout-api/core/discovery"
//	    "feedscout-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    FeedParser: myParser,     // implements interfaces.FeedParser
//	    Logger:     myLogger,     // implements interfaces.Logger
//	    Telemetry:  interfaces.NoopTelemetry{},
//	}
//
//	// Create the engine
//	registry := discovery.NewRegistry(deps, discovery.ValidatorOptions{})
//	registry.Register(discovery.NewStandardService(deps, false, nil))
//
//	// Discover feeds
//	feeds, err := registry.Discover(ctx, "https://example.com")
package core
