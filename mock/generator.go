package mock

import (
	"context"

	"github.com/fwojciec/newsdesk"
)

var _ newsdesk.Generator = (*Generator)(nil)

// Generator is a mock implementation of newsdesk.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, article *newsdesk.Article) (*newsdesk.Analysis, error)
}

func (g *Generator) Generate(ctx context.Context, article *newsdesk.Article) (*newsdesk.Analysis, error) {
	return g.GenerateFn(ctx, article)
}
