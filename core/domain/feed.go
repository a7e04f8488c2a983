// ABOUTME: DiscoveredFeed domain model represents a validated feed found for a website URL
// ABOUTME: Provides format constants and validation logic to ensure feed data integrity

package domain

import (
	"errors"
	"net/url"
)

// FeedFormat identifies the syndication format of a discovered feed.
type FeedFormat string

const (
	// FeedFormatRSS covers RSS 0.9x and 2.0 feeds.
	FeedFormatRSS FeedFormat = "rss"

	// FeedFormatAtom covers Atom 0.3 and 1.0 feeds.
	FeedFormatAtom FeedFormat = "atom"

	// FeedFormatRDF covers RDF Site Summary (RSS 1.0) feeds.
	FeedFormatRDF FeedFormat = "rdf"

	// FeedFormatJSON covers JSON Feed documents.
	FeedFormatJSON FeedFormat = "json"
)

// DiscoveredFeed represents a feed that was located for a website URL and
// confirmed to parse as a syndication document.
type DiscoveredFeed struct {
	// ID is the feed's stable identity. For Atom feeds this is the
	// feed-level id element when present; otherwise the feed URL.
	ID string

	// Title is the human-readable title of the feed. Feeds without a
	// title receive a placeholder so downstream consumers can rely on
	// the field being non-empty.
	Title string

	// URL is the candidate URL the feed was requested from, before any
	// redirects. Keeping the original URL makes discovery reproducible
	// for the caller.
	URL string

	// SiteURL is the website the feed belongs to, when the feed
	// declares one.
	SiteURL string

	// Description is a plain-text summary of the feed, stripped of any
	// HTML the feed embedded in its description or subtitle. Optional.
	Description string

	// Format identifies the feed's syndication format.
	Format FeedFormat

	// IconURL points to artwork for the feed when the discovering
	// service found any. Optional.
	IconURL string
}

// Validate checks that the discovered feed carries the fields every
// consumer depends on.
func (f *DiscoveredFeed) Validate() error {
	if f.Title == "" {
		return errors.New("feed title cannot be empty")
	}

	if f.URL == "" {
		return errors.New("feed URL cannot be empty")
	}

	if _, err := url.Parse(f.URL); err != nil {
		return errors.New("feed URL is not valid format")
	}

	switch f.Format {
	case FeedFormatRSS, FeedFormatAtom, FeedFormatRDF, FeedFormatJSON:
	default:
		return errors.New("feed format is not recognized")
	}

	return nil
}
