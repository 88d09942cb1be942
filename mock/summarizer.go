package mock

import (
	"context"

	"github.com/fwojciec/newsdesk"
)

var _ newsdesk.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of newsdesk.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, req *newsdesk.Request) (*newsdesk.Response, error)
}

func (s *Summarizer) Summarize(ctx context.Context, req *newsdesk.Request) (*newsdesk.Response, error) {
	return s.SummarizeFn(ctx, req)
}
