// ABOUTME: FeedItem domain model carries the per-entry fields comment-link extraction inspects
// ABOUTME: Includes typed links and the CommentLink result produced by extractors

package domain

// FeedItem is a single feed entry as seen by comment-link extraction.
// Only the fields the extractors inspect are modeled; everything else a
// feed entry may carry stays with the parser.
type FeedItem struct {
	// Title is the entry title.
	Title string

	// Link is the entry's primary permalink.
	Link string

	// CommentsURL is the entry's dedicated comments URL when the feed
	// declares one explicitly, such as the RSS comments element.
	CommentsURL string

	// Links holds every typed link the entry declares. Atom entries may
	// carry several with distinct rel attributes.
	Links []ItemLink

	// Content is the entry's full content block, HTML allowed.
	Content string

	// Description is the entry's summary, HTML allowed.
	Description string

	// Enclosures holds media attachments declared by the entry.
	Enclosures []Enclosure
}

// Enclosure is a media attachment declared by a feed entry.
type Enclosure struct {
	// URL is the attachment location.
	URL string

	// Type is the attachment's MIME type when declared.
	Type string

	// Length is the attachment size in bytes, zero when unknown.
	Length int64
}

// ItemLink is a typed link attached to a feed entry.
type ItemLink struct {
	// Href is the link target.
	Href string

	// Rel describes the link's relationship to the entry, such as
	// "alternate" or "replies". Empty when the feed omitted it.
	Rel string
}

// CommentLink is the outcome of comment-link extraction for one entry.
type CommentLink struct {
	// URL is the page where the entry's discussion lives.
	URL string

	// Source names the extractor that produced the link, for example
	// "explicit-field" or "markup-pattern".
	Source string
}
