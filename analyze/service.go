package analyze

import (
	"context"

	"github.com/fwojciec/newsdesk"
)

// Ensure Service implements newsdesk.Summarizer at compile time.
var _ newsdesk.Summarizer = (*Service)(nil)

// Service runs a request through resolution, generation and assembly.
type Service struct {
	Resolver  newsdesk.Resolver
	Generator newsdesk.Generator
}

// NewService creates a new Service.
func NewService(resolver newsdesk.Resolver, generator newsdesk.Generator) *Service {
	return &Service{Resolver: resolver, Generator: generator}
}

// Summarize validates the request, resolves it into an article and returns
// the assembled analysis. Generator failures are reported as EINTERNAL.
func (s *Service) Summarize(ctx context.Context, req *newsdesk.Request) (*newsdesk.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resolved, err := s.Resolver.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	analysis, err := s.Generator.Generate(ctx, resolved.Article)
	if err != nil {
		return nil, newsdesk.WrapError(newsdesk.EINTERNAL, err, "analysis failed")
	}

	return newsdesk.Assemble(resolved.Article, resolved.Sources, analysis), nil
}
