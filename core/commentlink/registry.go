// ABOUTME: Comment-link registry picks one discussion URL for a feed item using competing extractors
// ABOUTME: Same priority-walk contract as feed discovery, but synchronous and CPU-only

package commentlink

import (
	"context"

	"feedscout-api/core/domain"
	"feedscout-api/core/interfaces"
	"feedscout-api/core/strategy"
)

// Extractor locates a discussion URL inside one feed item. Extractors
// are stateless and safe to share.
type Extractor interface {
	strategy.Strategy

	// CanHandle reports whether the item carries the fields this
	// extractor inspects.
	CanHandle(item *domain.FeedItem) bool

	// Extract returns the discussion link or nil when the item has none
	// this extractor can see. An error means the extractor itself broke.
	Extract(item *domain.FeedItem) (*domain.CommentLink, error)
}

// Registry walks extractors in ascending priority order and returns the
// first link found. There is no network involved; the whole walk is a
// few string and markup scans.
type Registry struct {
	extractors *strategy.Registry[Extractor, *domain.CommentLink]
}

// NewRegistry creates a registry with no extractors. Register them at
// the composition root.
func NewRegistry(logger interfaces.Logger) *Registry {
	return &Registry{
		extractors: strategy.NewRegistry[Extractor, *domain.CommentLink](logger),
	}
}

// Register adds an extractor. Equal priorities keep registration order.
func (r *Registry) Register(e Extractor) {
	r.extractors.Register(e)
}

// Extract returns the item's discussion URL, or nil when no extractor
// finds one. A nil result is the expected outcome for items without a
// discussion; it is never an error. An extractor failing is logged and
// treated as no match.
func (r *Registry) Extract(item *domain.FeedItem) *domain.CommentLink {
	if item == nil {
		return nil
	}

	link, ok, _ := r.extractors.Walk(context.Background(), item.Link,
		func(e Extractor) bool {
			return e.CanHandle(item)
		},
		func(_ context.Context, e Extractor) (*domain.CommentLink, bool, error) {
			found, err := e.Extract(item)
			if err != nil {
				return nil, false, err
			}
			return found, found != nil, nil
		})

	if !ok {
		return nil
	}
	return link
}
