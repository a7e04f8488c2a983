// ABOUTME: Tests for the comment link handler
// ABOUTME: Verifies per-item results stay aligned with request order

package handlers

import (
	"encoding/json"
	"testing"

	"feedscout-api/core/domain"
	"github.com/danielgtaylor/huma/v2/humatest"
)

// mockExtractor is a stub comment link extractor
type mockExtractor struct {
	extractFunc func(item *domain.FeedItem) *domain.CommentLink
}

func (m *mockExtractor) Extract(item *domain.FeedItem) *domain.CommentLink {
	if m.extractFunc != nil {
		return m.extractFunc(item)
	}
	return nil
}

// commentLinkResponseBody mirrors the handler's output body for decoding
type commentLinkResponseBody struct {
	Results []struct {
		CommentLink *struct {
			URL    string `json:"url"`
			Source string `json:"source"`
		} `json:"comment_link"`
	} `json:"results"`
}

func TestExtractCommentLinks_MixedResults(t *testing.T) {
	extractor := &mockExtractor{
		extractFunc: func(item *domain.FeedItem) *domain.CommentLink {
			if item.CommentsURL == "" {
				return nil
			}
			return &domain.CommentLink{
				URL:    item.CommentsURL,
				Source: "explicit-field",
			}
		},
	}

	handler := NewCommentLinkHandler(extractor)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/comment-links", map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"link":         "https://example.com/post-1",
				"comments_url": "https://example.com/post-1#comments",
			},
			{
				"link": "https://example.com/post-2",
			},
		},
	})

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body commentLinkResponseBody
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(body.Results))
	}

	first := body.Results[0].CommentLink
	if first == nil {
		t.Fatal("Expected comment link for first item")
	}
	if first.URL != "https://example.com/post-1#comments" {
		t.Errorf("Expected explicit comments URL, got %q", first.URL)
	}
	if first.Source != "explicit-field" {
		t.Errorf("Expected source explicit-field, got %q", first.Source)
	}

	if body.Results[1].CommentLink != nil {
		t.Errorf("Expected no comment link for second item, got %+v", body.Results[1].CommentLink)
	}
}

func TestExtractCommentLinks_EmptyItems(t *testing.T) {
	handler := NewCommentLinkHandler(&mockExtractor{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/comment-links", map[string]interface{}{
		"items": []map[string]interface{}{},
	})

	if resp.Code != 422 {
		t.Errorf("Expected status 422 for empty item list, got %d", resp.Code)
	}
}

func TestCommentLinkHandler_RegisterRoutes(t *testing.T) {
	handler := NewCommentLinkHandler(&mockExtractor{})
	_, api := humatest.New(t)

	handler.RegisterRoutes(api)

	if api.OpenAPI().Paths["/comment-links"] == nil {
		t.Error("Expected /comment-links path to be registered")
	}
}
