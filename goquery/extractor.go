// Package goquery implements newsdesk.Extractor with CSS selectors over a
// goquery document.
package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsdesk"
)

// DefaultContentSelectors lists the CSS selectors tried, in order, to find a
// page's main content. Semantic and site-specific containers come before
// generic ones; the first selector that matches wins.
var DefaultContentSelectors = []string{
	"article",
	".article-content",
	".post-content",
	".entry-content",
	".content",
	"main",
	".main-content",
}

// noiseSelector matches elements whose text is never article content.
const noiseSelector = "script, style"

// Ensure Extractor implements newsdesk.Extractor at compile time.
var _ newsdesk.Extractor = (*Extractor)(nil)

// Extractor finds the main content of a news page by trying an ordered list
// of selectors, falling back to the text of the whole page.
type Extractor struct {
	selectors []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors replaces DefaultContentSelectors. Order is priority.
func WithSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.selectors = slices.Clone(selectors)
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		selectors: slices.Clone(DefaultContentSelectors),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Selectors returns the selectors in priority order.
func (e *Extractor) Selectors() []string {
	return slices.Clone(e.selectors)
}

// Extract parses raw HTML and returns the page title and main content text.
func (e *Extractor) Extract(rawHTML string) (*newsdesk.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsdesk.Errorf(newsdesk.EEXTRACT, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, newsdesk.WrapError(newsdesk.EEXTRACT, err, "failed to parse HTML")
	}

	doc.Find(noiseSelector).Remove()

	body := newsdesk.NormalizeText(e.contentText(doc))
	if body == "" {
		return nil, newsdesk.Errorf(newsdesk.EEXTRACT, "no text content found")
	}

	return &newsdesk.Article{
		Title: title(doc),
		Body:  body,
	}, nil
}

// contentText returns the text of the first element matched by the first
// matching selector. The whole document's text is used when no selector
// matches or the matched element holds no text.
func (e *Extractor) contentText(doc *goquery.Document) string {
	for _, selector := range e.selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if text := sel.Text(); strings.TrimSpace(text) != "" {
			return text
		}
		break
	}
	return doc.Text()
}

func title(doc *goquery.Document) string {
	t := strings.TrimSpace(doc.Find("title").First().Text())
	if t == "" {
		return newsdesk.PlaceholderTitle
	}
	return t
}
