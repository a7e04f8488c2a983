// ABOUTME: Explicit-field extractor reads the comments URL a feed declares directly on the item
// ABOUTME: Highest-confidence source; wins whenever the field is present

package commentlink

import "feedscout-api/core/domain"

// SourceExplicitField tags links taken from the item's comments field.
const SourceExplicitField = "explicit-field"

// ExplicitFieldExtractor returns the item's declared comments URL, such
// as the RSS comments element. When a feed says where its discussion
// lives there is nothing to guess.
type ExplicitFieldExtractor struct{}

// NewExplicitFieldExtractor creates the extractor.
func NewExplicitFieldExtractor() *ExplicitFieldExtractor {
	return &ExplicitFieldExtractor{}
}

// Name identifies the extractor in logs and link provenance.
func (e *ExplicitFieldExtractor) Name() string { return SourceExplicitField }

// Priority puts the explicit field ahead of every heuristic.
func (e *ExplicitFieldExtractor) Priority() int { return 10 }

// CanHandle reports whether the item declares a comments URL.
func (e *ExplicitFieldExtractor) CanHandle(item *domain.FeedItem) bool {
	return item.CommentsURL != ""
}

// Extract returns the declared comments URL verbatim.
func (e *ExplicitFieldExtractor) Extract(item *domain.FeedItem) (*domain.CommentLink, error) {
	if item.CommentsURL == "" {
		return nil, nil
	}
	return &domain.CommentLink{
		URL:    item.CommentsURL,
		Source: SourceExplicitField,
	}, nil
}
