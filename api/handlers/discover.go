// ABOUTME: Discover handler exposing the feed discovery engine over HTTP
// ABOUTME: Fans out per-URL discovery concurrently with a bounded worker count

package handlers

import (
	"context"
	"errors"
	"net/http"

	"feedscout-api/api/dto/mappers"
	"feedscout-api/api/dto/requests"
	"feedscout-api/api/dto/responses"
	"feedscout-api/core/discovery"
	"feedscout-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/sync/errgroup"
)

// defaultDiscoverConcurrency caps how many URLs are discovered at once
// within a single request.
const defaultDiscoverConcurrency = 8

// FeedDiscoverer finds valid feeds for one input URL.
type FeedDiscoverer interface {
	Discover(ctx context.Context, rawURL string) ([]domain.DiscoveredFeed, error)
}

// DiscoverHandler handles feed discovery requests
type DiscoverHandler struct {
	discoverer  FeedDiscoverer
	concurrency int
}

// NewDiscoverHandler creates a new discover handler. A non-positive
// concurrency falls back to the default.
func NewDiscoverHandler(discoverer FeedDiscoverer, concurrency int) *DiscoverHandler {
	if concurrency <= 0 {
		concurrency = defaultDiscoverConcurrency
	}
	return &DiscoverHandler{
		discoverer:  discoverer,
		concurrency: concurrency,
	}
}

// RegisterRoutes registers discover routes
func (h *DiscoverHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "discoverFeeds",
		Method:      http.MethodPost,
		Path:        "/discover",
		Summary:     "Discover feeds from websites",
		Description: "Locates and validates RSS, Atom, RDF and JSON feeds for the provided website URLs",
		Tags:        []string{"Discovery"},
	}, h.DiscoverFeeds)
}

// DiscoverFeedsInput defines the input for feed discovery
type DiscoverFeedsInput struct {
	Body requests.DiscoverFeedsRequest
}

// DiscoverFeedsOutput defines the output for feed discovery
type DiscoverFeedsOutput struct {
	Body struct {
		Results []responses.DiscoveryResult `json:"results" doc:"Discovery results, one per input URL in request order"`
	}
}

// DiscoverFeeds handles the POST /discover endpoint. Each URL is
// discovered independently; one URL failing never fails the batch.
func (h *DiscoverHandler) DiscoverFeeds(ctx context.Context, input *DiscoverFeedsInput) (*DiscoverFeedsOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	results := make([]responses.DiscoveryResult, len(input.Body.URLs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)

	for i, rawURL := range input.Body.URLs {
		i, rawURL := i, rawURL
		g.Go(func() error {
			results[i] = h.discoverOne(gctx, rawURL)
			return nil
		})
	}

	// Workers never return errors; Wait only orders the writes.
	_ = g.Wait()

	output := &DiscoverFeedsOutput{}
	output.Body.Results = results
	return output, nil
}

// discoverOne runs discovery for a single URL and folds the outcome
// into a result envelope.
func (h *DiscoverHandler) discoverOne(ctx context.Context, rawURL string) responses.DiscoveryResult {
	feeds, err := h.discoverer.Discover(ctx, rawURL)
	if err != nil {
		if errors.Is(err, discovery.ErrNoFeeds) {
			return responses.DiscoveryResult{
				URL:    rawURL,
				Status: responses.DiscoveryStatusNone,
			}
		}
		return responses.DiscoveryResult{
			URL:    rawURL,
			Status: responses.DiscoveryStatusError,
			Error:  err.Error(),
		}
	}

	return responses.DiscoveryResult{
		URL:    rawURL,
		Status: responses.DiscoveryStatusOK,
		Feeds:  mappers.ToDiscoveredFeedResponses(feeds),
	}
}
