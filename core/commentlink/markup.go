// ABOUTME: Markup-pattern extractor hunts for discussion anchors inside an item's HTML fields
// ABOUTME: Lowest-confidence heuristic; tolerant of broken markup and never panics outward

package commentlink

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"feedscout-api/core/domain"
)

// SourceMarkupPattern tags links found by scanning HTML content.
const SourceMarkupPattern = "markup-pattern"

// commentTextPattern matches anchor text like "comments", "12 comments",
// "💬 Comments", "[comments]", "discuss", or "discussion".
var commentTextPattern = regexp.MustCompile(`(?i)^(?:💬\s*)?(?:\[\s*comments?\s*\]|\d+\s+comments?|comments?|discuss(?:ion)?)$`)

// MarkupExtractor scans an item's HTML fields for an anchor whose
// visible text suggests a discussion link. Fields are checked in a fixed
// order; the full content block is more likely to carry the site's real
// footer links than the summary.
type MarkupExtractor struct{}

// NewMarkupExtractor creates the extractor.
func NewMarkupExtractor() *MarkupExtractor {
	return &MarkupExtractor{}
}

// Name identifies the extractor in logs and link provenance.
func (e *MarkupExtractor) Name() string { return SourceMarkupPattern }

// Priority makes markup scanning the last resort.
func (e *MarkupExtractor) Priority() int { return 30 }

// CanHandle reports whether the item has HTML fields worth scanning.
func (e *MarkupExtractor) CanHandle(item *domain.FeedItem) bool {
	return item.Content != "" || item.Description != ""
}

// Extract scans Content and then Description for a discussion anchor.
// Broken markup is handled by the lenient HTML parser; a panic anywhere
// in the scan is recovered into a nil result.
func (e *MarkupExtractor) Extract(item *domain.FeedItem) (link *domain.CommentLink, err error) {
	defer func() {
		if r := recover(); r != nil {
			link = nil
			err = nil
		}
	}()

	for _, field := range []string{item.Content, item.Description} {
		if field == "" {
			continue
		}
		if found := scanAnchors(field); found != "" {
			return &domain.CommentLink{
				URL:    found,
				Source: SourceMarkupPattern,
			}, nil
		}
	}
	return nil, nil
}

// scanAnchors returns the href of the first anchor whose visible text
// matches the discussion heuristics, or "".
func scanAnchors(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	found := ""
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if !commentTextPattern.MatchString(text) {
			return true
		}
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(strings.ToLower(href), "javascript:") {
			return true
		}
		found = href
		return false
	})
	return found
}
