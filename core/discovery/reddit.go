// ABOUTME: Reddit discovery service recognizes community and user URLs and builds their .rss endpoints
// ABOUTME: Fetches the community icon from about.json as a best-effort side channel

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
	"feedscout-api/core/interfaces"
)

var (
	// Subreddit names are 3-21 word characters. User names allow
	// hyphens and run 3-20. Anything else is a spoofed or malformed
	// path and is left to the standard service.
	subredditPattern  = regexp.MustCompile(`^[A-Za-z0-9_]{3,21}$`)
	redditUserPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)
)

// RedditService discovers feeds for reddit.com community and user pages.
// Reddit exposes a deterministic .rss endpoint per community, so no page
// scan is needed; the constructed URL still goes through the shared
// Validator like any other candidate.
type RedditService struct {
	deps        interfaces.Dependencies
	iconTimeout time.Duration
}

// NewRedditService creates the service. iconTimeout bounds the about.json
// side fetch; zero means 5 seconds.
func NewRedditService(deps interfaces.Dependencies, iconTimeout time.Duration) *RedditService {
	if iconTimeout <= 0 {
		iconTimeout = 5 * time.Second
	}
	return &RedditService{
		deps:        deps,
		iconTimeout: iconTimeout,
	}
}

// Name identifies the service in logs.
func (s *RedditService) Name() string { return "reddit" }

// Priority places Reddit in the specialized tier, ahead of the catch-all.
func (s *RedditService) Priority() int { return 10 }

// CanHandle reports whether the URL is a recognizable community or user
// page on reddit.com or one of its subdomains.
func (s *RedditService) CanHandle(rawURL string) bool {
	_, ok := s.parsePath(rawURL)
	return ok
}

// Discover builds the community's .rss endpoint, validates it, and
// attaches the community icon when the side fetch succeeds. The icon
// fetch runs concurrently with validation and its failure is logged and
// ignored; it never blocks the main result beyond its own timeout.
func (s *RedditService) Discover(ctx context.Context, rawURL string, validator *Validator) ([]domain.DiscoveredFeed, error) {
	target, ok := s.parsePath(rawURL)
	if !ok {
		return nil, nil
	}

	iconCh := make(chan string, 1)
	go func() {
		iconCh <- s.fetchIcon(ctx, target)
	}()

	feedURL := fmt.Sprintf("https://www.reddit.com%s/.rss", target)
	feed := validator.Validate(ctx, feedURL)
	if feed == nil {
		return nil, nil
	}

	if icon := <-iconCh; icon != "" {
		feed.IconURL = icon
	}

	return []domain.DiscoveredFeed{*feed}, nil
}

// parsePath extracts the canonical "/r/name" or "/user/name" path from a
// Reddit URL, rejecting hosts and identifiers that do not match.
func (s *RedditService) parsePath(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	if host != "reddit.com" && !strings.HasSuffix(host, ".reddit.com") {
		return "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return "", false
	}

	switch parts[0] {
	case "r":
		if subredditPattern.MatchString(parts[1]) {
			return "/r/" + parts[1], true
		}
	case "user", "u":
		if redditUserPattern.MatchString(parts[1]) {
			return "/user/" + parts[1], true
		}
	}
	return "", false
}

// aboutResponse is the slice of reddit's about.json we care about.
type aboutResponse struct {
	Data struct {
		CommunityIcon string `json:"community_icon"`
		IconImg       string `json:"icon_img"`
	} `json:"data"`
}

// fetchIcon resolves the community or user icon from about.json. Every
// failure path returns "".
func (s *RedditService) fetchIcon(ctx context.Context, target string) string {
	ctx, cancel := context.WithTimeout(ctx, s.iconTimeout)
	defer cancel()

	aboutURL := fmt.Sprintf("https://www.reddit.com%s/about.json", target)
	resp, err := s.deps.HTTPClient.Get(ctx, aboutURL)
	if err != nil {
		s.logIconMiss(aboutURL, err)
		return ""
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		s.logIconMiss(aboutURL, fmt.Errorf("status %d", resp.StatusCode()))
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), 1024*1024))
	if err != nil {
		s.logIconMiss(aboutURL, err)
		return ""
	}

	var about aboutResponse
	if err := json.Unmarshal(body, &about); err != nil {
		s.logIconMiss(aboutURL, err)
		return ""
	}

	icon := about.Data.CommunityIcon
	if icon == "" {
		icon = about.Data.IconImg
	}
	// Reddit serves the icon URL HTML-escaped inside JSON.
	return strings.ReplaceAll(icon, "&amp;", "&")
}

func (s *RedditService) logIconMiss(aboutURL string, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Debug("reddit icon fetch failed", map[string]interface{}{
		"url":   aboutURL,
		"error": err.Error(),
	})
}
