// ABOUTME: Response DTOs for the comment link extraction endpoint
// ABOUTME: Keeps results aligned by index with the requested entries

package responses

// CommentLinkResult is the extraction outcome for a single feed entry.
// Results are returned in the same order as the requested entries.
type CommentLinkResult struct {
	// CommentLink is the extracted link, absent when no extractor matched
	CommentLink *CommentLinkResponse `json:"comment_link,omitempty" doc:"Extracted comment link, absent when none was found"`
}

// CommentLinkResponse is an extracted comment link in API responses.
type CommentLinkResponse struct {
	// URL is the page where the entry's discussion lives
	URL string `json:"url" doc:"Discussion page URL"`

	// Source names the extraction strategy that produced the link
	Source string `json:"source" doc:"Extraction strategy that produced the link"`
}
