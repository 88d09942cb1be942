// Package analyze wires the newsdesk pipeline together: it resolves
// requests into articles, generates analyses for them and assembles the
// response.
package analyze

import (
	"context"
	"errors"
	"net/url"

	"github.com/fwojciec/newsdesk"
)

// Ensure Resolver implements newsdesk.Resolver at compile time.
var _ newsdesk.Resolver = (*Resolver)(nil)

// Resolver turns requests into articles. Raw text is used as-is; URLs are
// fetched with Fetcher and reduced to text with Extractor.
type Resolver struct {
	Fetcher   newsdesk.Fetcher
	Extractor newsdesk.Extractor
}

// NewResolver creates a new Resolver.
func NewResolver(fetcher newsdesk.Fetcher, extractor newsdesk.Extractor) *Resolver {
	return &Resolver{Fetcher: fetcher, Extractor: extractor}
}

// Resolve returns the article for the request. Every failure on the URL
// path is an EEXTRACT error wrapping its cause.
func (r *Resolver) Resolve(ctx context.Context, req *newsdesk.Request) (*newsdesk.Resolved, error) {
	if !req.IsURL() {
		return &newsdesk.Resolved{
			Article: &newsdesk.Article{Title: newsdesk.PlaceholderTitle, Body: req.Content},
			Sources: []newsdesk.SourceRef{},
		}, nil
	}

	rawURL := req.Content
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	html, err := r.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, newsdesk.WrapError(newsdesk.EEXTRACT, err, "failed to fetch page")
	}

	article, err := r.Extractor.Extract(html)
	if err != nil {
		var e *newsdesk.Error
		if errors.As(err, &e) && e.Code == newsdesk.EEXTRACT {
			return nil, err
		}
		return nil, newsdesk.WrapError(newsdesk.EEXTRACT, err, "failed to extract article")
	}

	return &newsdesk.Resolved{
		Article: article,
		Sources: []newsdesk.SourceRef{{Name: newsdesk.SourceName, URL: rawURL}},
	}, nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return newsdesk.WrapError(newsdesk.EEXTRACT, err, "invalid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return newsdesk.Errorf(newsdesk.EEXTRACT, "invalid URL scheme %q (allowed: http, https)", u.Scheme)
	}
	if u.Host == "" {
		return newsdesk.Errorf(newsdesk.EEXTRACT, "URL has no host")
	}
	return nil
}
