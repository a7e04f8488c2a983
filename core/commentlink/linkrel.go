// ABOUTME: Link-rel extractor scans an item's typed links for a replies or comments relation
// ABOUTME: Covers Atom entries that declare their discussion thread as a rel=replies link

package commentlink

import (
	"strings"

	"feedscout-api/core/domain"
)

// SourceLinkRel tags links taken from a typed link's rel attribute.
const SourceLinkRel = "link-rel"

// discussionRels are link relations that point at an entry's discussion.
var discussionRels = map[string]bool{
	"replies":    true,
	"comments":   true,
	"discussion": true,
}

// LinkRelExtractor finds the first typed link whose rel names a
// discussion, matched case-insensitively.
type LinkRelExtractor struct{}

// NewLinkRelExtractor creates the extractor.
func NewLinkRelExtractor() *LinkRelExtractor {
	return &LinkRelExtractor{}
}

// Name identifies the extractor in logs and link provenance.
func (e *LinkRelExtractor) Name() string { return SourceLinkRel }

// Priority places structured links after the explicit field but before
// markup heuristics.
func (e *LinkRelExtractor) Priority() int { return 20 }

// CanHandle reports whether the item carries any typed links.
func (e *LinkRelExtractor) CanHandle(item *domain.FeedItem) bool {
	return len(item.Links) > 0
}

// Extract returns the first link with a discussion relation.
func (e *LinkRelExtractor) Extract(item *domain.FeedItem) (*domain.CommentLink, error) {
	for _, link := range item.Links {
		if link.Href == "" {
			continue
		}
		if discussionRels[strings.ToLower(strings.TrimSpace(link.Rel))] {
			return &domain.CommentLink{
				URL:    link.Href,
				Source: SourceLinkRel,
			}, nil
		}
	}
	return nil, nil
}
