// ABOUTME: Comment link handler exposing extraction over HTTP
// ABOUTME: Runs the extractor registry against each submitted feed entry

package handlers

import (
	"context"
	"net/http"

	"feedscout-api/api/dto/mappers"
	"feedscout-api/api/dto/requests"
	"feedscout-api/api/dto/responses"
	"feedscout-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// CommentLinkExtractor finds the discussion link for a feed entry.
type CommentLinkExtractor interface {
	Extract(item *domain.FeedItem) *domain.CommentLink
}

// CommentLinkHandler handles comment link extraction requests
type CommentLinkHandler struct {
	extractor CommentLinkExtractor
}

// NewCommentLinkHandler creates a new comment link handler
func NewCommentLinkHandler(extractor CommentLinkExtractor) *CommentLinkHandler {
	return &CommentLinkHandler{
		extractor: extractor,
	}
}

// RegisterRoutes registers comment link routes
func (h *CommentLinkHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "extractCommentLinks",
		Method:      http.MethodPost,
		Path:        "/comment-links",
		Summary:     "Extract comment links from feed entries",
		Description: "Finds the discussion page for each submitted feed entry, trying explicit fields, typed links and markup patterns in order",
		Tags:        []string{"Comment Links"},
	}, h.ExtractCommentLinks)
}

// ExtractCommentLinksInput defines the input for comment link extraction
type ExtractCommentLinksInput struct {
	Body requests.ExtractCommentLinksRequest
}

// ExtractCommentLinksOutput defines the output for comment link extraction
type ExtractCommentLinksOutput struct {
	Body struct {
		Results []responses.CommentLinkResult `json:"results" doc:"Extraction results, one per entry in request order"`
	}
}

// ExtractCommentLinks handles the POST /comment-links endpoint
func (h *CommentLinkHandler) ExtractCommentLinks(ctx context.Context, input *ExtractCommentLinksInput) (*ExtractCommentLinksOutput, error) {
	if len(input.Body.Items) == 0 {
		return nil, huma.Error400BadRequest("No items provided")
	}

	results := make([]responses.CommentLinkResult, len(input.Body.Items))
	for i := range input.Body.Items {
		item := mappers.ToFeedItem(&input.Body.Items[i])
		link := h.extractor.Extract(item)
		results[i] = responses.CommentLinkResult{
			CommentLink: mappers.ToCommentLinkResponse(link),
		}
	}

	output := &ExtractCommentLinksOutput{}
	output.Body.Results = results
	return output, nil
}
