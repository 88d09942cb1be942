// Package trafilatura implements newsdesk.Extractor with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/newsdesk"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements newsdesk.Extractor at compile time.
var _ newsdesk.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, newsdesk.WrapError(newsdesk.EEXTRACT, err, "trafilatura extraction failed")
	}

	body := newsdesk.NormalizeText(result.ContentText)
	if body == "" {
		return nil, newsdesk.Errorf(newsdesk.EEXTRACT, "no text content found")
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = newsdesk.PlaceholderTitle
	}

	return &newsdesk.Article{
		Title: title,
		Body:  body,
	}, nil
}
