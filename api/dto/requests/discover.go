// ABOUTME: Request DTOs for the feed discovery endpoint
// ABOUTME: Provides validation constraints for incoming discovery requests

package requests

// DiscoverFeedsRequest represents the request body for discovering feeds
// from a batch of website URLs.
type DiscoverFeedsRequest struct {
	// URLs is the list of website URLs to discover feeds from
	URLs []string `json:"urls" minItems:"1" maxItems:"50" doc:"List of website URLs to discover feeds from"`
}
