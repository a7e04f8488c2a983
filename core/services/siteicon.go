// ABOUTME: Site icon service scrapes a page for its best icon URL using colly
// ABOUTME: Best-effort side channel for feeds that declare no artwork of their own

package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly"

	"feedscout-api/core/interfaces"
)

const (
	siteIconUserAgent = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"
	siteIconCacheTTL  = 24 * time.Hour
)

// SiteIconService resolves the icon a site advertises in its markup.
// Every failure path returns ""; the caller's result must never depend
// on an icon being found.
type SiteIconService struct {
	deps    interfaces.Dependencies
	timeout time.Duration
}

// NewSiteIconService creates the service. timeout bounds the page
// scrape; zero means 5 seconds.
func NewSiteIconService(deps interfaces.Dependencies, timeout time.Duration) *SiteIconService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SiteIconService{
		deps:    deps,
		timeout: timeout,
	}
}

// ResolveIcon returns the icon URL for a page, preferring declared icon
// links over the Open Graph image, falling back to /favicon.ico.
// Results are cached for a day.
func (s *SiteIconService) ResolveIcon(ctx context.Context, pageURL string) string {
	base, err := url.Parse(pageURL)
	if err != nil || base.Host == "" {
		return ""
	}

	cacheKey := "siteicon:" + base.Scheme + "://" + base.Host
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			return string(data)
		}
	}

	icon := s.scrape(pageURL, base)
	if icon == "" {
		icon = base.Scheme + "://" + base.Host + "/favicon.ico"
	}

	if s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(icon), siteIconCacheTTL)
	}

	return icon
}

// scrape fetches the page and collects icon candidates from its head.
func (s *SiteIconService) scrape(pageURL string, base *url.URL) string {
	c := colly.NewCollector(
		colly.UserAgent(siteIconUserAgent),
		colly.MaxBodySize(2*1024*1024),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(s.timeout)

	var iconHref, appleHref, ogImage string

	c.OnHTML(`link[rel][href]`, func(e *colly.HTMLElement) {
		rel := strings.ToLower(e.Attr("rel"))
		switch {
		case strings.Contains(rel, "apple-touch-icon"):
			if appleHref == "" {
				appleHref = e.Attr("href")
			}
		case strings.Contains(rel, "icon"):
			if iconHref == "" {
				iconHref = e.Attr("href")
			}
		}
	})

	c.OnHTML(`meta[property="og:image"]`, func(e *colly.HTMLElement) {
		if ogImage == "" {
			ogImage = e.Attr("content")
		}
	})

	if err := c.Visit(pageURL); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("site icon scrape failed", map[string]interface{}{
				"url":   pageURL,
				"error": err.Error(),
			})
		}
		return ""
	}
	c.Wait()

	for _, candidate := range []string{appleHref, iconHref, ogImage} {
		if candidate == "" {
			continue
		}
		if resolved := resolveHref(base, candidate); resolved != "" {
			return resolved
		}
	}
	return ""
}

func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
