package interfaces

// Dependencies holds the external collaborators services need.
// This struct is used for dependency injection throughout the application:
// the composition root builds it once and hands it to every service
// constructor.
type Dependencies struct {
	// Cache for storing lookup results and fetched artifacts
	Cache Cache

	// HTTPClient for making external requests
	HTTPClient HTTPClient

	// FeedParser for turning fetched bytes into structured feeds
	FeedParser FeedParser

	// Logger for structured logging
	Logger Logger

	// Telemetry for optional tracing; NoopTelemetry when disabled
	Telemetry Telemetry
}
