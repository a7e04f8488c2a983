package interfaces

import "feedscout-api/core/domain"

// FeedParser defines the interface for parsing raw feed documents.
// Implementations must treat parsing as all-or-nothing: a document either
// yields a complete ParsedFeed or an error, never a partial result.
type FeedParser interface {
	// Parse reads a feed document and returns its structured form.
	// Returns an error when the content is not a recognizable feed.
	Parse(content []byte) (*ParsedFeed, error)
}

// ParsedFeed is the structured result of parsing a feed document.
type ParsedFeed struct {
	// Title is the feed-level title. May be empty when the feed omits it.
	Title string

	// Description is the feed-level description or subtitle.
	Description string

	// SiteURL is the website the feed belongs to, when declared.
	SiteURL string

	// FeedID is the feed-level identifier for formats that carry one,
	// such as the Atom id element. Empty otherwise.
	FeedID string

	// Format identifies the syndication format of the document.
	Format domain.FeedFormat

	// Items holds the feed's entries.
	Items []domain.FeedItem
}
