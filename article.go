package newsdesk

import "context"

// PlaceholderTitle is the title used when no title can be derived,
// either because the input was raw text or because the page has none.
const PlaceholderTitle = "خبر کا عنوان"

// SourceName labels the SourceRef created for URL input.
const SourceName = "خبر کا ذریعہ"

// Article is the title and body text an analysis is built from.
type Article struct {
	Title string
	Body  string
}

// SourceRef points at the page an article was extracted from.
type SourceRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Resolved is the outcome of resolving a request: the article plus the
// sources it came from. Sources is empty for raw text input.
type Resolved struct {
	Article *Article
	Sources []SourceRef
}

// Resolver turns a request into an article.
type Resolver interface {
	// Resolve returns the article for the request.
	// Returns EEXTRACT if a URL could not be fetched or yielded no text.
	Resolve(ctx context.Context, req *Request) (*Resolved, error)
}
