// ABOUTME: Standard discovery service scans page markup for feed links and probes conventional paths
// ABOUTME: Catch-all strategy that handles every URL no specialized service claims

package discovery

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"feedscout-api/core/domain"
	"feedscout-api/core/errors"
	"feedscout-api/core/interfaces"
)

// commonFeedPaths are conventional feed locations probed when the page
// itself advertises nothing.
var commonFeedPaths = []string{
	"/feed",
	"/feed.xml",
	"/rss",
	"/rss.xml",
	"/atom.xml",
	"/index.xml",
	"/feeds/posts/default",
}

// feedLinkTypes are the link element MIME types that advertise a feed.
var feedLinkTypes = map[string]bool{
	"application/rss+xml":   true,
	"application/atom+xml":  true,
	"application/feed+json": true,
	"application/json":      true,
}

// IconResolver resolves a site's icon URL for feeds that carry none of
// their own. Implementations are best-effort and return "" on failure.
type IconResolver interface {
	ResolveIcon(ctx context.Context, pageURL string) string
}

// StandardService is the lowest-priority, catch-all discovery strategy.
// It fetches the input page once, collects candidates from three sources
// in order — the page itself when it is already a feed, advertised
// link elements, and conventional paths — and validates each candidate
// through the shared Validator.
type StandardService struct {
	deps interfaces.Dependencies

	// exhaustive returns every candidate that validates instead of
	// stopping at the first.
	exhaustive bool

	// icons, when set, supplies a site icon for feeds without one.
	icons IconResolver
}

// NewStandardService creates the service. icons may be nil.
func NewStandardService(deps interfaces.Dependencies, exhaustive bool, icons IconResolver) *StandardService {
	return &StandardService{
		deps:       deps,
		exhaustive: exhaustive,
		icons:      icons,
	}
}

// Name identifies the service in logs.
func (s *StandardService) Name() string { return "standard" }

// Priority puts the catch-all after every specialized service.
func (s *StandardService) Priority() int { return 100 }

// CanHandle accepts every URL; the standard service is the fallback.
func (s *StandardService) CanHandle(rawURL string) bool { return true }

// Discover probes the input URL for feeds. A malformed input URL is the
// one real error; a reachable page with no feeds is an empty result.
func (s *StandardService) Discover(ctx context.Context, rawURL string, validator *Validator) ([]domain.DiscoveredFeed, error) {
	base, err := url.Parse(rawURL)
	if err != nil || base.Host == "" {
		return nil, &errors.ValidationError{Field: "url", Message: "not an absolute URL"}
	}

	candidates := s.collectCandidates(ctx, rawURL, base)

	var feeds []domain.DiscoveredFeed
	for _, candidate := range candidates {
		feed := validator.Validate(ctx, candidate)
		if feed == nil {
			continue
		}
		feeds = append(feeds, *feed)
		if !s.exhaustive {
			break
		}
	}

	if len(feeds) > 0 && s.icons != nil {
		if icon := s.icons.ResolveIcon(ctx, rawURL); icon != "" {
			for i := range feeds {
				if feeds[i].IconURL == "" {
					feeds[i].IconURL = icon
				}
			}
		}
	}

	return feeds, nil
}

// collectCandidates gathers candidate feed URLs in confidence order: the
// input itself when its body already looks like a feed, then every feed
// link the page advertises, then the conventional paths. The page fetch
// failing entirely still leaves the conventional paths to probe.
func (s *StandardService) collectCandidates(ctx context.Context, rawURL string, base *url.URL) []string {
	var candidates []string

	finalBase := base
	if body, finalURL, ok := s.fetchPage(ctx, rawURL); ok {
		if u, err := url.Parse(finalURL); err == nil && u.Host != "" {
			// Relative hrefs resolve against where the page actually
			// came from, not where we asked.
			finalBase = u
		}

		if looksLikeFeed(body) {
			candidates = append(candidates, rawURL)
		}

		candidates = append(candidates, scanFeedLinks(body, finalBase)...)
	}

	origin := &url.URL{Scheme: finalBase.Scheme, Host: finalBase.Host}
	for _, path := range commonFeedPaths {
		candidates = append(candidates, origin.String()+path)
	}

	return candidates
}

// fetchPage retrieves the input page, returning its body and final
// post-redirect URL. ok is false on any failure.
func (s *StandardService) fetchPage(ctx context.Context, rawURL string) ([]byte, string, bool) {
	resp, err := s.deps.HTTPClient.Get(ctx, rawURL)
	if err != nil {
		return nil, "", false
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, "", false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), 5*1024*1024))
	if err != nil {
		return nil, "", false
	}
	return body, resp.FinalURL(), true
}

// scanFeedLinks extracts advertised feed URLs from link elements,
// resolving relative hrefs against the page's base URL.
func scanFeedLinks(body []byte, base *url.URL) []string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var links []string
	doc.Find(`link[rel="alternate"]`).Each(func(_ int, sel *goquery.Selection) {
		linkType, _ := sel.Attr("type")
		if !feedLinkTypes[strings.ToLower(strings.TrimSpace(linkType))] {
			return
		}
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		links = append(links, base.ResolveReference(ref).String())
	})
	return links
}

// looksLikeFeed sniffs whether a response body is itself a syndication
// document, so a direct feed URL as input skips the markup scan.
func looksLikeFeed(body []byte) bool {
	head := strings.ToLower(string(bytes.TrimSpace(body[:min(len(body), 512)])))

	if strings.HasPrefix(head, "{") {
		return strings.Contains(head, "jsonfeed.org")
	}

	for _, marker := range []string{"<rss", "<feed", "<rdf:rdf"} {
		if strings.Contains(head, marker) {
			return true
		}
	}
	return false
}
