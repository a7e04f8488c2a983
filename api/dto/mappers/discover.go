// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between the discovery engine and the API layer

package mappers

import (
	"feedscout-api/api/dto/requests"
	"feedscout-api/api/dto/responses"
	"feedscout-api/core/domain"
)

// ToDiscoveredFeedResponse converts a domain DiscoveredFeed to its DTO
func ToDiscoveredFeedResponse(feed *domain.DiscoveredFeed) *responses.DiscoveredFeedResponse {
	if feed == nil {
		return nil
	}

	return &responses.DiscoveredFeedResponse{
		ID:          feed.ID,
		Title:       feed.Title,
		URL:         feed.URL,
		SiteURL:     feed.SiteURL,
		Description: feed.Description,
		Format:      string(feed.Format),
		IconURL:     feed.IconURL,
	}
}

// ToDiscoveredFeedResponses converts a slice of domain feeds to DTOs
func ToDiscoveredFeedResponses(feeds []domain.DiscoveredFeed) []responses.DiscoveredFeedResponse {
	result := make([]responses.DiscoveredFeedResponse, 0, len(feeds))
	for i := range feeds {
		if resp := ToDiscoveredFeedResponse(&feeds[i]); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

// ToFeedItem converts a FeedItemRequest DTO to the domain model the
// extractors operate on
func ToFeedItem(req *requests.FeedItemRequest) *domain.FeedItem {
	if req == nil {
		return nil
	}

	item := &domain.FeedItem{
		Title:       req.Title,
		Link:        req.Link,
		CommentsURL: req.CommentsURL,
		Content:     req.Content,
		Description: req.Description,
	}

	for _, link := range req.Links {
		item.Links = append(item.Links, domain.ItemLink{
			Href: link.Href,
			Rel:  link.Rel,
		})
	}

	return item
}

// ToCommentLinkResponse converts a domain CommentLink to its DTO
func ToCommentLinkResponse(link *domain.CommentLink) *responses.CommentLinkResponse {
	if link == nil {
		return nil
	}

	return &responses.CommentLinkResponse{
		URL:    link.URL,
		Source: link.Source,
	}
}
