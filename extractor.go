package newsdesk

// Extractor derives an article from an HTML page.
type Extractor interface {
	// Extract parses raw HTML and returns the page title and the
	// whitespace-normalized text of its main content.
	// Returns EEXTRACT if the page cannot be parsed or has no text.
	Extract(html string) (*Article, error)
}
