// ABOUTME: Tests for domain-to-DTO mappers
// ABOUTME: Verifies field mapping and nil handling for discovery and comment link DTOs

package mappers

import (
	"testing"

	"feedscout-api/api/dto/requests"
	"feedscout-api/core/domain"
)

func TestToDiscoveredFeedResponse_MapsAllFields(t *testing.T) {
	feed := &domain.DiscoveredFeed{
		ID:          "https://example.com/feed",
		Title:       "Example Feed",
		URL:         "https://example.com/feed",
		SiteURL:     "https://example.com",
		Description: "A feed about examples",
		Format:      domain.FeedFormatAtom,
		IconURL:     "https://example.com/icon.png",
	}

	resp := ToDiscoveredFeedResponse(feed)

	if resp.ID != feed.ID {
		t.Errorf("Expected ID %q, got %q", feed.ID, resp.ID)
	}
	if resp.Title != feed.Title {
		t.Errorf("Expected Title %q, got %q", feed.Title, resp.Title)
	}
	if resp.SiteURL != feed.SiteURL {
		t.Errorf("Expected SiteURL %q, got %q", feed.SiteURL, resp.SiteURL)
	}
	if resp.Format != "atom" {
		t.Errorf("Expected Format atom, got %q", resp.Format)
	}
	if resp.IconURL != feed.IconURL {
		t.Errorf("Expected IconURL %q, got %q", feed.IconURL, resp.IconURL)
	}
}

func TestToDiscoveredFeedResponse_NilFeed(t *testing.T) {
	if resp := ToDiscoveredFeedResponse(nil); resp != nil {
		t.Error("Expected nil response for nil feed")
	}
}

func TestToDiscoveredFeedResponses_EmptySlice(t *testing.T) {
	result := ToDiscoveredFeedResponses(nil)

	if result == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(result) != 0 {
		t.Errorf("Expected 0 responses, got %d", len(result))
	}
}

func TestToFeedItem_MapsLinks(t *testing.T) {
	req := &requests.FeedItemRequest{
		Title:       "Entry",
		Link:        "https://example.com/post",
		CommentsURL: "https://example.com/post#comments",
		Links: []requests.ItemLinkRequest{
			{Href: "https://example.com/post/replies", Rel: "replies"},
		},
		Content:     "<p>body</p>",
		Description: "summary",
	}

	item := ToFeedItem(req)

	if item.Link != req.Link {
		t.Errorf("Expected Link %q, got %q", req.Link, item.Link)
	}
	if item.CommentsURL != req.CommentsURL {
		t.Errorf("Expected CommentsURL %q, got %q", req.CommentsURL, item.CommentsURL)
	}
	if len(item.Links) != 1 {
		t.Fatalf("Expected 1 link, got %d", len(item.Links))
	}
	if item.Links[0].Rel != "replies" {
		t.Errorf("Expected rel replies, got %q", item.Links[0].Rel)
	}
}

func TestToCommentLinkResponse_MapsFields(t *testing.T) {
	link := &domain.CommentLink{
		URL:    "https://example.com/comments",
		Source: "link-rel",
	}

	resp := ToCommentLinkResponse(link)

	if resp.URL != link.URL {
		t.Errorf("Expected URL %q, got %q", link.URL, resp.URL)
	}
	if resp.Source != "link-rel" {
		t.Errorf("Expected Source link-rel, got %q", resp.Source)
	}
}

func TestToCommentLinkResponse_NilLink(t *testing.T) {
	if resp := ToCommentLinkResponse(nil); resp != nil {
		t.Error("Expected nil response for nil link")
	}
}
