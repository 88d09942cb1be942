package mock

import "github.com/fwojciec/newsdesk"

var _ newsdesk.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsdesk.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*newsdesk.Article, error)
}

func (e *Extractor) Extract(html string) (*newsdesk.Article, error) {
	return e.ExtractFn(html)
}
