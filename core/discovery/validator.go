// ABOUTME: Feed validator fetches a candidate URL once, parses it, and suppresses duplicates
// ABOUTME: Deduplicates by normalized URL identity and by Atom feed-content identity per session

package discovery

import (
	"context"
	"io"
	"time"

	"feedscout-api/core/domain"
	"feedscout-api/core/interfaces"
	"feedscout-api/pkg/utils/html"
	"feedscout-api/pkg/utils/urlnorm"
)

const (
	// untitledFeed is the placeholder title for feeds that omit one.
	untitledFeed = "Untitled Feed"

	// acceptHeader lists the syndication MIME types we can parse, with
	// a wildcard fallback for servers that mislabel their feeds.
	acceptHeader = "application/rss+xml, application/atom+xml, application/feed+json, application/xml;q=0.9, */*;q=0.8"
)

// Validator confirms that a candidate URL is a real, parseable feed and
// deduplicates candidates against its session.
//
// Concurrency contract: callers racing on the same normalized identity
// never both succeed. The first caller to claim the key under the session
// lock performs the fetch; every concurrent or later caller receives nil
// immediately without touching the network (claim-and-reject).
type Validator struct {
	session *Session
	deps    interfaces.Dependencies
	opts    ValidatorOptions
}

// ValidatorOptions bounds the validator's network behavior.
type ValidatorOptions struct {
	// FetchTimeout caps one feed fetch. Zero means 10 seconds.
	FetchTimeout time.Duration

	// MaxBodyBytes caps how much of a response body is read before
	// parsing. Zero means 10 MiB.
	MaxBodyBytes int64
}

func (o ValidatorOptions) fetchTimeout() time.Duration {
	if o.FetchTimeout <= 0 {
		return 10 * time.Second
	}
	return o.FetchTimeout
}

func (o ValidatorOptions) maxBodyBytes() int64 {
	if o.MaxBodyBytes <= 0 {
		return 10 * 1024 * 1024
	}
	return o.MaxBodyBytes
}

// NewValidator binds a validator to one session. The validator lives
// exactly as long as its session; never reuse one across discovery calls.
func NewValidator(session *Session, deps interfaces.Dependencies, opts ValidatorOptions) *Validator {
	return &Validator{
		session: session,
		deps:    deps,
		opts:    opts,
	}
}

// Validate fetches and parses one candidate feed URL. It never returns an
// error: every failure mode — duplicate identity, fetch failure, non-2xx
// status, unparseable content — yields nil. A non-nil result always
// carries the original candidate URL, not the redirect target, so callers
// see the address they asked about.
func (v *Validator) Validate(ctx context.Context, candidateURL string) *domain.DiscoveredFeed {
	key := urlnorm.Normalize(candidateURL)
	if !v.session.ClaimURL(key) {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, v.opts.fetchTimeout())
	defer cancel()

	resp, err := v.deps.HTTPClient.GetWithHeaders(ctx, candidateURL, map[string]string{
		"Accept": acceptHeader,
	})
	if err != nil {
		v.logSkip(candidateURL, "fetch failed", err)
		return nil
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		v.logSkip(candidateURL, "non-success status", nil)
		return nil
	}

	// Reconcile redirects before identity is finalized. Two entry URLs
	// that redirect to the one real feed must yield a single result.
	if finalKey := urlnorm.Normalize(resp.FinalURL()); finalKey != key && finalKey != "" {
		if !v.session.ClaimURL(finalKey) {
			return nil
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), v.opts.maxBodyBytes()))
	if err != nil {
		v.logSkip(candidateURL, "body read failed", err)
		return nil
	}

	parsed, err := v.deps.FeedParser.Parse(body)
	if err != nil {
		v.logSkip(candidateURL, "not a parseable feed", err)
		return nil
	}

	// Atom feeds carry a feed-level id that survives mirroring and URL
	// aliasing; claim it so the same feed reached through an unrelated
	// URL is still recognized. Other formats have no reliable
	// cross-instance identifier and deduplicate by URL alone.
	feedID := candidateURL
	if parsed.Format == domain.FeedFormatAtom && parsed.FeedID != "" {
		if !v.session.ClaimFeedID(parsed.FeedID) {
			return nil
		}
		feedID = parsed.FeedID
	}

	title := parsed.Title
	if title == "" {
		title = untitledFeed
	}

	return &domain.DiscoveredFeed{
		ID:          feedID,
		Title:       title,
		URL:         candidateURL,
		SiteURL:     parsed.SiteURL,
		Description: html.StripHTML(parsed.Description),
		Format:      parsed.Format,
	}
}

func (v *Validator) logSkip(candidateURL, reason string, err error) {
	if v.deps.Logger == nil {
		return
	}
	fields := map[string]interface{}{
		"url":    candidateURL,
		"reason": reason,
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	v.deps.Logger.Debug("candidate rejected", fields)
}
