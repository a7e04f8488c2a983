// ABOUTME: Podcast directory service resolves Apple Podcasts pages to their backing RSS feeds
// ABOUTME: Looks up the catalog id via the iTunes lookup API with cached results

package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"feedscout-api/core/domain"
	"feedscout-api/core/errors"
	"feedscout-api/core/interfaces"
)

// podcastIDPattern matches the trailing idNNNN segment of an Apple
// Podcasts page path.
var podcastIDPattern = regexp.MustCompile(`/id(\d+)$`)

const lookupCacheTTL = time.Hour

// PodcastDirectoryService discovers feeds behind Apple Podcasts directory
// pages. The directory page itself carries no feed link; the catalog id
// must be resolved through the iTunes lookup API, which also supplies
// show artwork used as the feed icon.
type PodcastDirectoryService struct {
	deps interfaces.Dependencies

	// lookupBase overrides the iTunes lookup endpoint in tests.
	lookupBase string
}

// NewPodcastDirectoryService creates the service.
func NewPodcastDirectoryService(deps interfaces.Dependencies) *PodcastDirectoryService {
	return &PodcastDirectoryService{
		deps:       deps,
		lookupBase: "https://itunes.apple.com/lookup",
	}
}

// Name identifies the service in logs.
func (s *PodcastDirectoryService) Name() string { return "podcast-directory" }

// Priority shares the specialized tier with Reddit; registration order
// breaks the tie.
func (s *PodcastDirectoryService) Priority() int { return 10 }

// CanHandle reports whether the URL is an Apple Podcasts show page.
func (s *PodcastDirectoryService) CanHandle(rawURL string) bool {
	_, ok := s.catalogID(rawURL)
	return ok
}

// Discover resolves the catalog id to the show's feed URL and validates
// it through the shared Validator.
func (s *PodcastDirectoryService) Discover(ctx context.Context, rawURL string, validator *Validator) ([]domain.DiscoveredFeed, error) {
	id, ok := s.catalogID(rawURL)
	if !ok {
		return nil, nil
	}

	entry, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.FeedURL == "" {
		return nil, nil
	}

	feed := validator.Validate(ctx, entry.FeedURL)
	if feed == nil {
		return nil, nil
	}

	if entry.ArtworkURL != "" {
		feed.IconURL = entry.ArtworkURL
	}

	return []domain.DiscoveredFeed{*feed}, nil
}

// catalogID extracts the numeric show id from an Apple Podcasts URL.
func (s *PodcastDirectoryService) catalogID(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	if host != "podcasts.apple.com" && host != "itunes.apple.com" {
		return "", false
	}
	if !strings.Contains(u.Path, "/podcast/") {
		return "", false
	}

	m := podcastIDPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// lookupEntry is the slice of an iTunes lookup result we keep.
type lookupEntry struct {
	FeedURL    string `json:"feedUrl"`
	ArtworkURL string `json:"artworkUrl600"`
}

type lookupResponse struct {
	ResultCount int           `json:"resultCount"`
	Results     []lookupEntry `json:"results"`
}

// lookup resolves a catalog id, memoizing results through the cache so
// repeated discoveries of the same show skip the directory round trip.
// Cache errors are ignored; the cache is an optimization, not a
// dependency.
func (s *PodcastDirectoryService) lookup(ctx context.Context, id string) (*lookupEntry, error) {
	cacheKey := "podcast_lookup:" + id

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var entry lookupEntry
			if err := json.Unmarshal(data, &entry); err == nil {
				return &entry, nil
			}
		}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.lookupBase+"?id="+id)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.ExternalAPIError{
			API:        "itunes-lookup",
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("lookup for id %s failed", id),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), 1024*1024))
	if err != nil {
		return nil, err
	}

	var result lookupResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	if result.ResultCount == 0 || len(result.Results) == 0 {
		return nil, &errors.NotFoundError{Resource: "podcast", ID: id}
	}

	entry := result.Results[0]
	if s.deps.Cache != nil {
		if data, err := json.Marshal(entry); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, lookupCacheTTL)
		}
	}

	return &entry, nil
}
