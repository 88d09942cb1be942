// Package readability implements newsdesk.Extractor with go-readability,
// for pages whose markup defeats the selector heuristics.
package readability

import (
	"strings"

	"github.com/fwojciec/newsdesk"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements newsdesk.Extractor at compile time.
var _ newsdesk.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article title and text.
func (e *Extractor) Extract(rawHTML string) (*newsdesk.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsdesk.Errorf(newsdesk.EEXTRACT, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, newsdesk.WrapError(newsdesk.EEXTRACT, err, "readability extraction failed")
	}

	body := newsdesk.NormalizeText(article.TextContent)
	if body == "" {
		return nil, newsdesk.Errorf(newsdesk.EEXTRACT, "no text content found")
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = newsdesk.PlaceholderTitle
	}

	return &newsdesk.Article{
		Title: title,
		Body:  body,
	}, nil
}
