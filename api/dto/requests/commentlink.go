// ABOUTME: Request DTOs for the comment link extraction endpoint
// ABOUTME: Mirrors the feed entry fields the extractors inspect

package requests

// ExtractCommentLinksRequest represents the request body for extracting
// comment links from a batch of feed entries.
type ExtractCommentLinksRequest struct {
	// Items is the list of feed entries to inspect
	Items []FeedItemRequest `json:"items" minItems:"1" maxItems:"200" doc:"Feed entries to extract comment links from"`
}

// FeedItemRequest carries the fields of a feed entry that comment link
// extraction inspects. All fields except the permalink are optional.
type FeedItemRequest struct {
	// Title is the entry title
	Title string `json:"title,omitempty" doc:"Entry title"`

	// Link is the entry's primary permalink
	Link string `json:"link,omitempty" format:"uri" doc:"Entry permalink"`

	// CommentsURL is the entry's dedicated comments URL when declared
	CommentsURL string `json:"comments_url,omitempty" format:"uri" doc:"Explicit comments URL from the feed"`

	// Links holds every typed link the entry declares
	Links []ItemLinkRequest `json:"links,omitempty" doc:"Typed links attached to the entry"`

	// Content is the entry's full content block, HTML allowed
	Content string `json:"content,omitempty" doc:"Entry content, HTML allowed"`

	// Description is the entry's summary, HTML allowed
	Description string `json:"description,omitempty" doc:"Entry summary, HTML allowed"`
}

// ItemLinkRequest is a typed link attached to a feed entry.
type ItemLinkRequest struct {
	// Href is the link target
	Href string `json:"href" format:"uri" doc:"Link target"`

	// Rel describes the link's relationship to the entry
	Rel string `json:"rel,omitempty" doc:"Link relationship, such as alternate or replies"`
}
