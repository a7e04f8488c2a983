// ABOUTME: Response DTOs for the feed discovery endpoint
// ABOUTME: Defines the per-URL result envelope and the discovered feed shape

package responses

// Discovery result statuses. Every URL in a discovery request resolves
// to exactly one of these.
const (
	// DiscoveryStatusOK means at least one valid feed was found.
	DiscoveryStatusOK = "ok"

	// DiscoveryStatusNone means discovery completed but found nothing.
	DiscoveryStatusNone = "none"

	// DiscoveryStatusError means discovery itself failed for this URL.
	DiscoveryStatusError = "error"
)

// DiscoveryResult is the outcome of feed discovery for a single URL.
type DiscoveryResult struct {
	// URL is the input URL this result belongs to
	URL string `json:"url" doc:"Input URL this result belongs to"`

	// Status is one of "ok", "none" or "error"
	Status string `json:"status" enum:"ok,none,error" doc:"Discovery outcome for this URL"`

	// Feeds holds the discovered feeds when status is "ok"
	Feeds []DiscoveredFeedResponse `json:"feeds,omitempty" doc:"Feeds discovered for this URL"`

	// Error carries the failure message when status is "error"
	Error string `json:"error,omitempty" doc:"Error message when discovery failed"`
}

// DiscoveredFeedResponse is a validated feed in API responses.
type DiscoveredFeedResponse struct {
	// ID is the feed's stable identity
	ID string `json:"id" doc:"Stable feed identity"`

	// Title is the feed title, never empty
	Title string `json:"title" doc:"Feed title"`

	// URL is the feed URL the candidate was requested from
	URL string `json:"url" doc:"Feed URL"`

	// SiteURL is the website the feed belongs to, when declared
	SiteURL string `json:"site_url,omitempty" doc:"Website the feed belongs to"`

	// Description is the feed's plain-text summary
	Description string `json:"description,omitempty" doc:"Plain-text feed summary"`

	// Format identifies the syndication format
	Format string `json:"format" enum:"rss,atom,rdf,json" doc:"Feed syndication format"`

	// IconURL points to feed artwork when any was found
	IconURL string `json:"icon_url,omitempty" doc:"Feed artwork URL"`
}
